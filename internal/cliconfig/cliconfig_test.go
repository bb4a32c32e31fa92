package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/franku1122/confmanager/parser"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".confctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Syntax, parser.DefaultSyntax(); got != want {
		t.Errorf("syntax = %+v, want defaults %+v", got, want)
	}
	if !cfg.AutoCreate {
		t.Error("AutoCreate = false, want true by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeSettings(t, `
comment: "#"
pair_separator: ":"
annotation_separator: "|"
quoting: false
auto_create: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Syntax.Comment != "#" {
		t.Errorf("Comment = %q, want %q", cfg.Syntax.Comment, "#")
	}
	if cfg.Syntax.PairSep != ':' {
		t.Errorf("PairSep = %q, want ':'", cfg.Syntax.PairSep)
	}
	if cfg.Syntax.AnnotationSep != '|' {
		t.Errorf("AnnotationSep = %q, want '|'", cfg.Syntax.AnnotationSep)
	}
	if cfg.Syntax.Quoting {
		t.Error("Quoting = true, want false")
	}
	if cfg.AutoCreate {
		t.Error("AutoCreate = true, want false")
	}
}

func TestLoad_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "pair_separator: \":\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Syntax.PairSep != ':' {
		t.Errorf("PairSep = %q, want ':'", cfg.Syntax.PairSep)
	}
	if cfg.Syntax.Comment != "//" {
		t.Errorf("Comment = %q, want default %q", cfg.Syntax.Comment, "//")
	}
	if !cfg.Syntax.Quoting {
		t.Error("Quoting = false, want default true")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "pair_separator: [\n"},
		{"multi-char separator", "pair_separator: \"==\"\n"},
		{"multi-char quote", "quote: \"''\"\n"},
		{"separator collision", "pair_separator: \";\"\n"},
		{"pair equals annotation", "pair_separator: \",\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Fatal("Load succeeded, want error")
			}
		})
	}
}
