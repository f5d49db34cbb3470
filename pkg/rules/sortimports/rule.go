// Package sortimports implements the sort-imports lint rule: import
// declarations must follow the configured statement-kind order and be
// alphabetized within each kind, and the members of a multi-name import must
// themselves be alphabetized.
package sortimports

import (
	"strings"

	"github.com/estreelint/sort-imports/pkg/estree"
	"github.com/estreelint/sort-imports/pkg/lint"
)

// RuleCode tags every diagnostic produced by this rule.
const RuleCode = "sort-imports"

// Diagnostic message templates.
const (
	msgMemberOrder = "Member '%s' of the import declaration should be sorted alphabetically"
	msgDeclOrder   = "Imports should be sorted alphabetically"
	msgSyntaxOrder = "Expected '%s' syntax before '%s' syntax"
)

// Rule audits the ordering of import declarations and of the names bound by
// each declaration. The value itself is stateless: per-unit state lives in a
// visitor created for each Check call, so one Rule may serve concurrently
// linted units.
type Rule struct {
	opts Options
}

// New creates the rule. An options value with an empty kind order is
// completed with the default order.
func New(opts Options) *Rule {
	if len(opts.MemberSyntaxSortOrder) == 0 {
		opts.MemberSyntaxSortOrder = DefaultOrder()
	}
	return &Rule{opts: opts}
}

// Code returns the rule identifier.
func (r *Rule) Code() string {
	return RuleCode
}

// Check walks the program body in source order, auditing each import
// declaration's members as it is encountered and the relative order of all
// declarations once the walk completes.
func (r *Rule) Check(ctx *lint.Context, prog *estree.Program) {
	v := &visitor{ctx: ctx, opts: r.opts}
	for i := range prog.Body {
		if decl := prog.Body[i].Import; decl != nil {
			v.visitImportDecl(decl)
		}
	}
	v.checkDeclarationSort()
}

// importRecord is the normalized form of one import declaration.
type importRecord struct {
	sortKey string
	pos     estree.Position
	kind    ImportKind
}

// memberSpecifier is one named member of a declaration, in source order.
type memberSpecifier struct {
	name string
	pos  estree.Position
}

// visitor holds the state accumulated over one unit. A fresh visitor is
// built per Check invocation; nothing survives across units.
type visitor struct {
	ctx     *lint.Context
	opts    Options
	records []importRecord
}

// visitImportDecl normalizes one declaration into an importRecord, collects
// its named members, and audits the members immediately.
//
// The record starts as a side-effect import and is rewritten while walking
// the specifiers: a named specifier decides the record only when it leads the
// specifier list, while default and namespace specifiers overwrite the record
// wherever they appear. A statement mixing a default with named specifiers
// therefore keeps the last overwrite, matching the rule's long-standing
// behavior for that ambiguous shape.
func (v *visitor) visitImportDecl(decl *estree.ImportDeclaration) {
	record := importRecord{pos: decl.Start(), kind: KindNone}
	var members []memberSpecifier

	for i, spec := range decl.Specifiers {
		switch s := spec.(type) {
		case *estree.NamedSpecifier:
			kind := KindSingle
			if len(decl.Specifiers) > 1 {
				kind = KindMultiple
			}
			members = append(members, memberSpecifier{name: s.Local.Name, pos: s.Local.Start()})
			if i == 0 {
				record.sortKey = s.Local.Name
				record.kind = kind
			}
		case *estree.DefaultSpecifier:
			record.sortKey = s.Local.Name
			record.kind = KindSingle
		case *estree.NamespaceSpecifier:
			record.sortKey = s.Local.Name
			record.kind = KindNamespace
		}
	}

	v.records = append(v.records, record)

	// Both ignore flags gate the member audit; the declaration scan in
	// checkDeclarationSort always runs.
	if !v.opts.IgnoreDeclarationSort {
		v.checkMemberSort(members)
	}
}

// checkMemberSort reports the first adjacent member pair whose keys are out
// of order, then stops. Equal keys are in order.
func (v *visitor) checkMemberSort(members []memberSpecifier) {
	if v.opts.IgnoreMemberSort {
		return
	}
	for i := 0; i+1 < len(members); i++ {
		current := v.sortKey(members[i].name)
		next := v.sortKey(members[i+1].name)
		if next < current {
			v.ctx.Reportf(members[i+1].pos, msgMemberOrder, members[i+1].name)
			return
		}
	}
}

// checkDeclarationSort runs once over the unit's accumulated records.
// Adjacent pairs in different kind groups are audited against the configured
// order; pairs in the same group are audited alphabetically. Each pair
// yields at most one diagnostic, and unlike the member audit every
// out-of-order pair is reported.
func (v *visitor) checkDeclarationSort() {
	for i := 0; i+1 < len(v.records); i++ {
		current := v.records[i]
		next := v.records[i+1]

		currentGroup := kindIndex(v.opts.MemberSyntaxSortOrder, current.kind)
		nextGroup := kindIndex(v.opts.MemberSyntaxSortOrder, next.kind)
		if currentGroup != nextGroup {
			if nextGroup < currentGroup {
				v.ctx.Reportf(next.pos, msgSyntaxOrder, next.kind.Token(), current.kind.Token())
			}
			continue
		}

		if v.sortKey(next.sortKey) < v.sortKey(current.sortKey) {
			v.ctx.Report(next.pos, msgDeclOrder)
		}
	}
}

// sortKey derives the comparison key for a bound name. Keys compare as plain
// strings; for UTF-8 input byte order equals code-point order, which is why
// uppercase sorts before lowercase unless IgnoreCase is set.
func (v *visitor) sortKey(name string) string {
	if v.opts.IgnoreCase {
		return strings.ToLower(name)
	}
	return name
}
