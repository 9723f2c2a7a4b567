package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Config is the visitorgen configuration: the visitors to generate for one
// Go package.
type Config struct {
	Visitors []Typeset `json:"visitors" yaml:"visitors"`
}

// Typeset declares one generated visitor: a name and the closed set of
// concrete types it enumerates.
type Typeset struct {
	// Name prefixes the generated identifiers, NameVisitor and NameVisitorFuncs.
	Name string `json:"name" yaml:"name"`

	// Types are the concrete type names of the set, at least one, pairwise
	// distinct, each bound in at most one typeset.
	Types []string `json:"types" yaml:"types"`

	// Result makes the generated visitor produce a value of this type.
	// Empty generates the plain error form.
	Result string `json:"result,omitempty" yaml:"result,omitempty"`
}

// LoadConfig reads a config file, the format selected by extension,
// visitor.yaml, visitor.yml or visitor.json.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses config data. path selects the format by extension and
// labels errors.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := &Config{}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := jsoniter.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("parse %s: unsupported format %q", path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config the way NewDispatcher checks its bindings: at
// least one typeset, every name and type an exported identifier, and every
// type bound in at most one typeset. The generated Accept method attaches to
// the type, so a second binding would collide.
func (c *Config) Validate() error {
	if len(c.Visitors) == 0 {
		return errors.New("no visitors")
	}
	var boundNames []string
	var boundTypes []string
	for i, ts := range c.Visitors {
		if len(ts.Name) == 0 {
			return fmt.Errorf("visitors[%d]: name is required", i)
		}
		if !isExportedIdent(ts.Name) {
			return fmt.Errorf("visitors[%d]: name %q is not an exported identifier", i, ts.Name)
		}
		if slices.Contains(boundNames, ts.Name) {
			return fmt.Errorf("visitors[%d]: name %s already used", i, ts.Name)
		}
		boundNames = append(boundNames, ts.Name)
		if len(ts.Types) == 0 {
			return fmt.Errorf("visitors[%d] %s: types are required", i, ts.Name)
		}
		for _, typ := range ts.Types {
			if !isExportedIdent(typ) {
				return fmt.Errorf("visitors[%d] %s: type %q is not an exported identifier", i, ts.Name, typ)
			}
			if slices.Contains(boundTypes, typ) {
				return fmt.Errorf("visitors[%d] %s: type %s already bound", i, ts.Name, typ)
			}
			boundTypes = append(boundTypes, typ)
		}
		if len(ts.Result) > 0 && !isIdent(ts.Result) {
			return fmt.Errorf("visitors[%d] %s: result %q is not a type identifier", i, ts.Name, ts.Result)
		}
	}
	return nil
}

// Files turns the config into the files to generate, one per typeset, all in
// dir with the package clause pkgName.
func (c *Config) Files(pkgName string, dir string) []*File {
	var files []*File
	for _, ts := range c.Visitors {
		if len(ts.Result) == 0 {
			files = append(files, NewVisitorFile(ts.Name, pkgName, dir, ts.Types))
			continue
		}
		files = append(files, NewResultFile(ts.Name, pkgName, dir, ts.Types, ts.Result))
	}
	return files
}

func isIdent(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return len(s) > 0
}

func isExportedIdent(s string) bool {
	if !isIdent(s) {
		return false
	}
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
