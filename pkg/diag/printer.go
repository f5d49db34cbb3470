package diag

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Printer renders a finished diagnostic list.
type Printer interface {
	Print(diags []Diagnostic) error
}

// NewPrinter selects the printer for a format name.
func NewPrinter(format string, w io.Writer) (Printer, error) {
	switch format {
	case "text", "":
		return TextPrinter{W: w}, nil
	case "json":
		return JSONPrinter{W: w}, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}

// TextPrinter writes one line per diagnostic: file:line:col: message (code).
type TextPrinter struct {
	W io.Writer
}

func (p TextPrinter) Print(diags []Diagnostic) error {
	for _, d := range diags {
		_, err := fmt.Fprintf(p.W, "%s:%d:%d: %s (%s)\n", d.File, d.Line, d.Column, d.Message, d.Code)
		if err != nil {
			return errors.Wrap(err, "writing diagnostic")
		}
	}
	return nil
}

// JSONPrinter writes the diagnostics as one indented JSON array.
type JSONPrinter struct {
	W io.Writer
}

func (p JSONPrinter) Print(diags []Diagnostic) error {
	if diags == nil {
		// An empty run prints [] rather than null.
		diags = []Diagnostic{}
	}
	enc := json.NewEncoder(p.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(diags); err != nil {
		return errors.Wrap(err, "encoding diagnostics")
	}
	return nil
}
