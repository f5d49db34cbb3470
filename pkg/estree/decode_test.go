package estree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
)

// importFixture is `import def, {a, b as c} from 'mod'` followed by
// `import * as ns from 'other'` and `import 'side'`, as acorn serializes
// them.
const importFixture = `{
  "type": "Program",
  "sourceType": "module",
  "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 3, "column": 14}},
  "body": [
    {
      "type": "ImportDeclaration",
      "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 37}},
      "specifiers": [
        {
          "type": "ImportDefaultSpecifier",
          "loc": {"start": {"line": 1, "column": 7}, "end": {"line": 1, "column": 10}},
          "local": {"type": "Identifier", "loc": {"start": {"line": 1, "column": 7}, "end": {"line": 1, "column": 10}}, "name": "def"}
        },
        {
          "type": "ImportSpecifier",
          "loc": {"start": {"line": 1, "column": 13}, "end": {"line": 1, "column": 14}},
          "imported": {"type": "Identifier", "loc": {"start": {"line": 1, "column": 13}, "end": {"line": 1, "column": 14}}, "name": "a"},
          "local": {"type": "Identifier", "loc": {"start": {"line": 1, "column": 13}, "end": {"line": 1, "column": 14}}, "name": "a"}
        },
        {
          "type": "ImportSpecifier",
          "loc": {"start": {"line": 1, "column": 16}, "end": {"line": 1, "column": 22}},
          "imported": {"type": "Identifier", "loc": {"start": {"line": 1, "column": 16}, "end": {"line": 1, "column": 17}}, "name": "b"},
          "local": {"type": "Identifier", "loc": {"start": {"line": 1, "column": 21}, "end": {"line": 1, "column": 22}}, "name": "c"}
        }
      ],
      "source": {"type": "Literal", "value": "mod", "raw": "'mod'"}
    },
    {
      "type": "ImportDeclaration",
      "loc": {"start": {"line": 2, "column": 0}, "end": {"line": 2, "column": 27}},
      "specifiers": [
        {
          "type": "ImportNamespaceSpecifier",
          "loc": {"start": {"line": 2, "column": 7}, "end": {"line": 2, "column": 14}},
          "local": {"type": "Identifier", "loc": {"start": {"line": 2, "column": 12}, "end": {"line": 2, "column": 14}}, "name": "ns"}
        }
      ],
      "source": {"type": "Literal", "value": "other", "raw": "'other'"}
    },
    {
      "type": "ImportDeclaration",
      "loc": {"start": {"line": 3, "column": 0}, "end": {"line": 3, "column": 14}},
      "specifiers": [],
      "source": {"type": "Literal", "value": "side", "raw": "'side'"}
    }
  ]
}`

func TestDecodeProgram(t *testing.T) {
	req := require.New(t)

	prog, err := Decode(strings.NewReader(importFixture))
	req.NoError(err)
	req.Equal(TypeProgram, prog.Type)
	req.Equal("module", prog.SourceType)
	req.Len(prog.Body, 3)

	first := prog.Body[0].Import
	req.NotNil(first, "first statement is an import")
	req.Equal("mod", first.Source.Value)
	req.Len(first.Specifiers, 3)

	def, ok := first.Specifiers[0].(*DefaultSpecifier)
	req.True(ok, "specifier 0 decodes as default, got %T", first.Specifiers[0])
	req.Equal("def", def.LocalName())
	req.Equal(Position{Line: 1, Column: 7}, def.Pos())

	plain, ok := first.Specifiers[1].(*NamedSpecifier)
	req.True(ok, "specifier 1 decodes as named, got %T", first.Specifiers[1])
	req.Equal("a", plain.Imported.Name)
	req.Equal("a", plain.LocalName())

	aliased, ok := first.Specifiers[2].(*NamedSpecifier)
	req.True(ok, "specifier 2 decodes as named, got %T", first.Specifiers[2])
	req.Equal("b", aliased.Imported.Name)
	req.Equal("c", aliased.LocalName())
	req.Equal(Position{Line: 1, Column: 21}, aliased.Pos(), "aliased member position is the local name")

	second := prog.Body[1].Import
	req.NotNil(second)
	ns, ok := second.Specifiers[0].(*NamespaceSpecifier)
	req.True(ok, "specifier decodes as namespace, got %T", second.Specifiers[0])
	req.Equal("ns", ns.LocalName())
	req.Equal(Position{Line: 2, Column: 12}, ns.Pos())

	side := prog.Body[2].Import
	req.NotNil(side)
	req.Empty(side.Specifiers, "side effect import has no specifiers")
	req.Equal(Position{Line: 3, Column: 0}, side.Start())
}

func TestDecodeSkipsNonImportStatements(t *testing.T) {
	req := require.New(t)

	doc := dedent.Dedent(`
		{
		  "type": "Program",
		  "sourceType": "module",
		  "body": [
		    {
		      "type": "ExpressionStatement",
		      "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 10}},
		      "expression": {"type": "CallExpression"}
		    },
		    {
		      "type": "VariableDeclaration",
		      "kind": "const",
		      "declarations": []
		    }
		  ]
		}`)

	prog, err := Decode(strings.NewReader(doc))
	req.NoError(err)
	req.Len(prog.Body, 2)
	req.Equal("ExpressionStatement", prog.Body[0].Type)
	req.Nil(prog.Body[0].Import, "non-import statements keep no declaration")
	req.Nil(prog.Body[1].Import)
	req.Equal(Position{Line: 1, Column: 0}, prog.Body[0].Start())
	req.Equal(Position{}, prog.Body[1].Start(), "missing loc decodes as the zero position")
}

func TestDecodeRejectsWrongRoot(t *testing.T) {
	req := require.New(t)

	_, err := Decode(strings.NewReader(`{"type": "Module", "body": []}`))
	req.Error(err)
	req.Contains(err.Error(), `document root is "Module"`)
}

func TestDecodeRejectsUnknownSpecifier(t *testing.T) {
	req := require.New(t)

	doc := dedent.Dedent(`
		{
		  "type": "Program",
		  "body": [
		    {
		      "type": "ImportDeclaration",
		      "specifiers": [{"type": "ExportSpecifier", "local": {"type": "Identifier", "name": "a"}}],
		      "source": {"type": "Literal", "value": "m"}
		    }
		  ]
		}`)

	_, err := Decode(strings.NewReader(doc))
	req.Error(err)
	req.Contains(err.Error(), `unknown import specifier type "ExportSpecifier"`)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	req := require.New(t)

	_, err := Decode(strings.NewReader(`{"type": "Program", "body": [`))
	req.Error(err)
}

func TestDecodeFile(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "mod.json")
	err := os.WriteFile(path, []byte(importFixture), 0644)
	req.NoError(err, "Failed to create unit file: %v", err)

	prog, err := DecodeFile(path)
	req.NoError(err)
	req.Len(prog.Body, 3)

	_, err = DecodeFile(filepath.Join(dir, "missing.json"))
	req.Error(err, "missing unit file must fail")

	bad := filepath.Join(dir, "bad.json")
	err = os.WriteFile(bad, []byte("not json"), 0644)
	req.NoError(err)
	_, err = DecodeFile(bad)
	req.Error(err)
	req.Contains(err.Error(), bad, "decode errors name the offending file")
}
