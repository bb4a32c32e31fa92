// Package cliconfig loads confctl's own settings file (.confctl.yaml),
// which customizes the .cfg syntax the tool reads and writes.
package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/franku1122/confmanager/parser"
)

// DefaultPath is where confctl looks for its settings when --settings is
// not given.
const DefaultPath = ".confctl.yaml"

// settings is the YAML shape of the file. Separator fields are single
// characters; absent fields keep their defaults.
type settings struct {
	Comment             string `yaml:"comment"`
	PairSeparator       string `yaml:"pair_separator"`
	AnnotationSeparator string `yaml:"annotation_separator"`
	Quoting             *bool  `yaml:"quoting"`
	Quote               string `yaml:"quote"`
	AutoCreate          *bool  `yaml:"auto_create"`
}

// Config is the resolved confctl configuration.
type Config struct {
	Syntax parser.Syntax

	// AutoCreate lets `confctl set` work against a file that does not exist
	// yet. Defaults to true.
	AutoCreate bool
}

// Load reads the settings file at path, applying defaults for absent fields.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Syntax:     parser.DefaultSyntax(),
		AutoCreate: true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cliconfig: read %q: %w", path, err)
	}

	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cliconfig: parse %q: %w", path, err)
	}

	if s.Comment != "" {
		cfg.Syntax.Comment = s.Comment
	}
	if s.PairSeparator != "" {
		r, err := singleRune("pair_separator", s.PairSeparator)
		if err != nil {
			return nil, err
		}
		cfg.Syntax.PairSep = r
	}
	if s.AnnotationSeparator != "" {
		r, err := singleRune("annotation_separator", s.AnnotationSeparator)
		if err != nil {
			return nil, err
		}
		cfg.Syntax.AnnotationSep = r
	}
	if s.Quoting != nil {
		cfg.Syntax.Quoting = *s.Quoting
	}
	if s.Quote != "" {
		r, err := singleRune("quote", s.Quote)
		if err != nil {
			return nil, err
		}
		cfg.Syntax.Quote = r
	}
	if s.AutoCreate != nil {
		cfg.AutoCreate = *s.AutoCreate
	}

	if err := cfg.Syntax.Validate(); err != nil {
		return nil, fmt.Errorf("cliconfig: %q: %w", path, err)
	}
	return cfg, nil
}

// singleRune parses a one-character settings field.
func singleRune(field, value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return 0, fmt.Errorf("cliconfig: %s must be a single character, got %q", field, value)
	}
	return r, nil
}
