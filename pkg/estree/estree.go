// Package estree models the subset of the ESTree AST format this linter
// consumes: program bodies, import declarations, and their specifiers.
// Documents are produced by any ESTree-compatible parser (acorn, esprima,
// @babel/parser) and read here as JSON; raw source text is never parsed.
package estree

// Node type discriminators used by the ESTree format.
const (
	TypeProgram                  = "Program"
	TypeImportDeclaration        = "ImportDeclaration"
	TypeImportSpecifier          = "ImportSpecifier"
	TypeImportDefaultSpecifier   = "ImportDefaultSpecifier"
	TypeImportNamespaceSpecifier = "ImportNamespaceSpecifier"
	TypeIdentifier               = "Identifier"
	TypeLiteral                  = "Literal"
)

// Position is a single point in a source unit. Lines are 1-based and columns
// are 0-based, following the ESTree convention.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the source region a node covers.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Node carries the fields shared by every ESTree node.
type Node struct {
	Type string          `json:"type"`
	Loc  *SourceLocation `json:"loc,omitempty"`
}

// Start returns the node's starting position, or the zero Position when the
// producing parser omitted location info.
func (n Node) Start() Position {
	if n.Loc == nil {
		return Position{}
	}
	return n.Loc.Start
}

// Identifier is a bound name.
type Identifier struct {
	Node
	Name string `json:"name"`
}

// Literal is a literal token; import sources are string literals.
type Literal struct {
	Node
	Value string `json:"value"`
	Raw   string `json:"raw,omitempty"`
}

// Specifier is one bound-name form inside an import declaration: named,
// default, or namespace.
type Specifier interface {
	// LocalName returns the name the specifier binds in module scope.
	LocalName() string
	// Pos returns the position of the bound name.
	Pos() Position

	specifier()
}

// NamedSpecifier binds Local from the exported name Imported, as in
// `import {a}` or `import {a as b}`.
type NamedSpecifier struct {
	Node
	Imported Identifier `json:"imported"`
	Local    Identifier `json:"local"`
}

// DefaultSpecifier binds a module's default export, as in `import a from 'm'`.
type DefaultSpecifier struct {
	Node
	Local Identifier `json:"local"`
}

// NamespaceSpecifier binds the whole module object, as in `import * as ns`.
type NamespaceSpecifier struct {
	Node
	Local Identifier `json:"local"`
}

func (s *NamedSpecifier) LocalName() string { return s.Local.Name }
func (s *NamedSpecifier) Pos() Position     { return s.Local.Start() }
func (s *NamedSpecifier) specifier()        {}

func (s *DefaultSpecifier) LocalName() string { return s.Local.Name }
func (s *DefaultSpecifier) Pos() Position     { return s.Local.Start() }
func (s *DefaultSpecifier) specifier()        {}

func (s *NamespaceSpecifier) LocalName() string { return s.Local.Name }
func (s *NamespaceSpecifier) Pos() Position     { return s.Local.Start() }
func (s *NamespaceSpecifier) specifier()        {}

// ImportDeclaration is one `import ...` statement.
type ImportDeclaration struct {
	Node
	Specifiers []Specifier
	Source     Literal
}

// Statement is one top-level program element. Import declarations are modeled
// in full; any other statement keeps only its type and location so the body
// can still be walked in source order.
type Statement struct {
	Node
	Import *ImportDeclaration
}

// Program is the root of one source unit's descriptor document.
type Program struct {
	Node
	SourceType string      `json:"sourceType,omitempty"`
	Body       []Statement `json:"body"`
}
