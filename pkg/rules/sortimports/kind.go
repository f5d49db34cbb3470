package sortimports

// ImportKind classifies the shape of one import statement.
type ImportKind int

const (
	// KindNone is a side-effect import binding no names.
	KindNone ImportKind = iota
	// KindNamespace is a `* as ns` import. Its option token is "all",
	// after the form importing all of a module's bindings.
	KindNamespace
	// KindMultiple is an import binding two or more named specifiers.
	KindMultiple
	// KindSingle is an import binding exactly one name.
	KindSingle
)

// Option tokens accepted by the memberSyntaxSortOrder surface.
const (
	TokenNone     = "none"
	TokenAll      = "all"
	TokenMultiple = "multiple"
	TokenSingle   = "single"
)

// kindByToken resolves option tokens. Unrecognized tokens fall back to
// KindNone so a misconfigured order list never aborts linting.
var kindByToken = map[string]ImportKind{
	TokenNone:     KindNone,
	TokenAll:      KindNamespace,
	TokenMultiple: KindMultiple,
	TokenSingle:   KindSingle,
}

// KindFromToken resolves one option token, falling back to KindNone.
func KindFromToken(token string) ImportKind {
	if k, ok := kindByToken[token]; ok {
		return k
	}
	return KindNone
}

// Token returns the option token naming the kind. It is also the spelling
// used in syntax-order diagnostics.
func (k ImportKind) Token() string {
	switch k {
	case KindNamespace:
		return TokenAll
	case KindMultiple:
		return TokenMultiple
	case KindSingle:
		return TokenSingle
	default:
		return TokenNone
	}
}

func (k ImportKind) String() string {
	return k.Token()
}
