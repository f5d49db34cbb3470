package estree

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Decode reads one ESTree program document from r.
func Decode(r io.Reader) (*Program, error) {
	var prog Program
	if err := json.NewDecoder(r).Decode(&prog); err != nil {
		return nil, errors.Wrap(err, "decoding estree document")
	}
	if prog.Type != TypeProgram {
		return nil, errors.Errorf("document root is %q, expected %q", prog.Type, TypeProgram)
	}
	return &prog, nil
}

// DecodeFile reads the ESTree program document at path.
func DecodeFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening unit file")
	}
	defer f.Close()

	prog, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return prog, nil
}

// UnmarshalJSON decodes a body element, retaining the full declaration only
// for imports.
func (s *Statement) UnmarshalJSON(data []byte) error {
	var probe Node
	if err := json.Unmarshal(data, &probe); err != nil {
		return errors.Wrap(err, "decoding statement")
	}
	s.Node = probe
	s.Import = nil

	if probe.Type != TypeImportDeclaration {
		return nil
	}

	var decl ImportDeclaration
	if err := json.Unmarshal(data, &decl); err != nil {
		return err
	}
	s.Import = &decl
	return nil
}

// UnmarshalJSON decodes an import declaration, resolving each element of the
// specifier union by its "type" discriminator.
func (d *ImportDeclaration) UnmarshalJSON(data []byte) error {
	var raw struct {
		Node
		Specifiers []json.RawMessage `json:"specifiers"`
		Source     Literal           `json:"source"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding import declaration")
	}

	d.Node = raw.Node
	d.Source = raw.Source
	d.Specifiers = make([]Specifier, 0, len(raw.Specifiers))
	for _, m := range raw.Specifiers {
		spec, err := decodeSpecifier(m)
		if err != nil {
			return err
		}
		d.Specifiers = append(d.Specifiers, spec)
	}
	return nil
}

// decodeSpecifier resolves one specifier union member.
func decodeSpecifier(data []byte) (Specifier, error) {
	var probe Node
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "decoding import specifier")
	}

	switch probe.Type {
	case TypeImportSpecifier:
		var s NamedSpecifier
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "decoding named specifier")
		}
		return &s, nil
	case TypeImportDefaultSpecifier:
		var s DefaultSpecifier
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "decoding default specifier")
		}
		return &s, nil
	case TypeImportNamespaceSpecifier:
		var s NamespaceSpecifier
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "decoding namespace specifier")
		}
		return &s, nil
	default:
		return nil, errors.Errorf("unknown import specifier type %q", probe.Type)
	}
}
