package sortimports

// Options configure the rule. The zero value is not the default
// configuration; use DefaultOptions or ResolveOptions.
type Options struct {
	// IgnoreCase lowers sort keys before comparison, so `A` and `a` compare
	// equal instead of `A` sorting first.
	IgnoreCase bool

	// IgnoreDeclarationSort skips the member audit of each declaration. The
	// statement-level scan always runs; see rule.go.
	IgnoreDeclarationSort bool

	// IgnoreMemberSort skips the member audit within multi-name declarations.
	IgnoreMemberSort bool

	// MemberSyntaxSortOrder is the required relative order of statement
	// kinds. After resolution it contains every kind at least once.
	MemberSyntaxSortOrder []ImportKind
}

// RawOptions is the wire form of the rule's configuration, as read from a
// config file or CLI flags.
type RawOptions struct {
	IgnoreCase            bool     `yaml:"ignoreCase" json:"ignoreCase"`
	IgnoreDeclarationSort bool     `yaml:"ignoreDeclarationSort" json:"ignoreDeclarationSort"`
	IgnoreMemberSort      bool     `yaml:"ignoreMemberSort" json:"ignoreMemberSort"`
	MemberSyntaxSortOrder []string `yaml:"memberSyntaxSortOrder" json:"memberSyntaxSortOrder"`
}

// DefaultOrder is the default statement-kind order: side-effect imports,
// namespace imports, multi-name imports, single-name imports.
func DefaultOrder() []ImportKind {
	return []ImportKind{KindNone, KindNamespace, KindMultiple, KindSingle}
}

// DefaultOptions returns the rule's defaults.
func DefaultOptions() Options {
	return Options{MemberSyntaxSortOrder: DefaultOrder()}
}

// ResolveOptions normalizes raw option values. Unrecognized order tokens
// resolve to "none"; kinds missing from a partial list are appended in
// default relative order so every kind has a group position.
func ResolveOptions(raw RawOptions) Options {
	opts := Options{
		IgnoreCase:            raw.IgnoreCase,
		IgnoreDeclarationSort: raw.IgnoreDeclarationSort,
		IgnoreMemberSort:      raw.IgnoreMemberSort,
	}

	if len(raw.MemberSyntaxSortOrder) == 0 {
		opts.MemberSyntaxSortOrder = DefaultOrder()
		return opts
	}

	order := make([]ImportKind, 0, len(raw.MemberSyntaxSortOrder))
	for _, token := range raw.MemberSyntaxSortOrder {
		order = append(order, KindFromToken(token))
	}
	for _, k := range DefaultOrder() {
		if kindIndex(order, k) < 0 {
			order = append(order, k)
		}
	}
	opts.MemberSyntaxSortOrder = order
	return opts
}

// kindIndex returns the first position of k in order, or -1. Duplicate
// entries keep their first position.
func kindIndex(order []ImportKind, k ImportKind) int {
	for i, candidate := range order {
		if candidate == k {
			return i
		}
	}
	return -1
}
