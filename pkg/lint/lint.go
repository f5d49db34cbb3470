// Package lint drives rules over source-unit descriptor documents: it walks
// one program at a time in source order and funnels rule findings into a
// shared diagnostic sink.
package lint

import (
	"fmt"

	"github.com/estreelint/sort-imports/pkg/diag"
	"github.com/estreelint/sort-imports/pkg/estree"
)

// Rule is one lint rule applied to a whole source unit.
type Rule interface {
	// Code identifies the rule in diagnostics.
	Code() string
	// Check audits one program and reports findings to ctx.
	Check(ctx *Context, prog *estree.Program)
}

// Context is the reporting surface for one unit. A fresh Context is created
// per unit, so rules report without synchronization; the sink behind it is
// the only shared resource.
type Context struct {
	file string
	code string
	sink diag.Sink
}

// NewContext creates the reporting context for one unit.
func NewContext(file, code string, sink diag.Sink) *Context {
	return &Context{file: file, code: code, sink: sink}
}

// Report adds a diagnostic at pos.
func (c *Context) Report(pos estree.Position, message string) {
	c.sink.Add(diag.Diagnostic{
		File:    c.file,
		Line:    pos.Line,
		Column:  pos.Column,
		Code:    c.code,
		Message: message,
	})
}

// Reportf adds a diagnostic with a formatted message.
func (c *Context) Reportf(pos estree.Position, format string, args ...any) {
	c.Report(pos, fmt.Sprintf(format, args...))
}
