// Package config loads lint configuration from project config files.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/estreelint/sort-imports/pkg/rules/sortimports"
)

// File is the top-level layout of a sort-imports config file.
type File struct {
	Rules Rules `yaml:"rules" json:"rules"`
}

// Rules holds the per-rule option blocks.
type Rules struct {
	SortImports *sortimports.RawOptions `yaml:"sort-imports" json:"sort-imports"`
}

// Load reads and parses the config file at path. YAML is a superset of
// JSON, so both .yaml and .json config files decode through the same
// unmarshaller.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &f, nil
}

// RuleOptions returns the sort-imports option block, or an empty one
// when the file has no such block.
func (f *File) RuleOptions() sortimports.RawOptions {
	if f == nil || f.Rules.SortImports == nil {
		return sortimports.RawOptions{}
	}
	return *f.Rules.SortImports
}
