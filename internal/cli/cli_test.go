package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/franku1122/confmanager/store"
)

// runCmd executes confctl with the given args and returns stdout, stderr and
// the command error.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&out, &errOut)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeCfg creates a .cfg file in a temp dir and returns its path plus the
// path of a nonexistent settings file in the same dir.
func writeCfg(t *testing.T, content string) (cfgPath, settingsPath string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "config.cfg")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath, filepath.Join(dir, ".confctl.yaml")
}

func TestGet(t *testing.T) {
	cfg, settings := writeCfg(t, "port = 8080\nhost = example.org\n")

	out, _, err := runCmd(t, "--file", cfg, "--settings", settings, "get", "port")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "8080\n" {
		t.Errorf("output = %q, want %q", out, "8080\n")
	}
}

func TestGet_MissingKey(t *testing.T) {
	cfg, settings := writeCfg(t, "port = 8080\n")

	_, _, err := runCmd(t, "--file", cfg, "--settings", settings, "get", "absent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "nope.cfg")
	settings := filepath.Join(dir, ".confctl.yaml")

	_, _, err := runCmd(t, "--file", cfg, "--settings", settings, "get", "port")
	if !errors.Is(err, store.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestSet_CreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fresh.cfg")
	settings := filepath.Join(dir, ".confctl.yaml")

	if _, _, err := runCmd(t, "--file", cfg, "--settings", settings, "set", "host", "example.org"); err != nil {
		t.Fatalf("set: %v", err)
	}

	data, err := os.ReadFile(cfg)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "host = \"example.org\"\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestSet_AutoCreateDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fresh.cfg")
	settings := filepath.Join(dir, ".confctl.yaml")
	if err := os.WriteFile(settings, []byte("auto_create: false\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	_, _, err := runCmd(t, "--file", cfg, "--settings", settings, "set", "host", "example.org")
	if !errors.Is(err, store.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestSet_PreservesExistingKeys(t *testing.T) {
	cfg, settings := writeCfg(t, "port = 8080\n")

	if _, _, err := runCmd(t, "--file", cfg, "--settings", settings, "set", "host", "example.org"); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, _, err := runCmd(t, "--file", cfg, "--settings", settings, "get", "port")
	if err != nil {
		t.Fatalf("get after set: %v", err)
	}
	if out != "8080\n" {
		t.Errorf("port = %q, want %q", out, "8080\n")
	}
}

func TestUnset(t *testing.T) {
	cfg, settings := writeCfg(t, "port = 8080\nhost = example.org\n")

	if _, _, err := runCmd(t, "--file", cfg, "--settings", settings, "unset", "port"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	data, err := os.ReadFile(cfg)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.Contains(string(data), "port") {
		t.Errorf("file still contains port: %q", data)
	}
	if !strings.Contains(string(data), "host = \"example.org\"") {
		t.Errorf("file lost host: %q", data)
	}
}

func TestUnset_MissingKey(t *testing.T) {
	cfg, settings := writeCfg(t, "port = 8080\n")

	_, _, err := runCmd(t, "--file", cfg, "--settings", settings, "unset", "absent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAnnotate(t *testing.T) {
	cfg, settings := writeCfg(t, "port = 8080\n")

	if _, _, err := runCmd(t, "--file", cfg, "--settings", settings, "annotate", "production"); err != nil {
		t.Fatalf("annotate: %v", err)
	}

	data, err := os.ReadFile(cfg)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "@annotation production\n") {
		t.Errorf("file = %q, want @annotation header first", data)
	}
}

func TestAnnotate_Remove(t *testing.T) {
	cfg, settings := writeCfg(t, "@annotation production, legacy\n\nport = 8080\n")

	if _, _, err := runCmd(t, "--file", cfg, "--settings", settings, "annotate", "--remove", "legacy"); err != nil {
		t.Fatalf("annotate --remove: %v", err)
	}

	data, err := os.ReadFile(cfg)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.Contains(string(data), "legacy") {
		t.Errorf("file still contains legacy: %q", data)
	}
	if !strings.Contains(string(data), "production") {
		t.Errorf("file lost production: %q", data)
	}
}

func TestList(t *testing.T) {
	cfg, settings := writeCfg(t, "@annotation production\n\nport = 8080\nhost = example.org\n")

	out, _, err := runCmd(t, "--file", cfg, "--settings", settings, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := "annotations: production\nhost=example.org\nport=8080\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestList_JSON(t *testing.T) {
	cfg, settings := writeCfg(t, "@annotation production\n\nport = 8080\n")

	out, _, err := runCmd(t, "--file", cfg, "--settings", settings, "list", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}

	var doc struct {
		Annotations []string          `json:"annotations"`
		Values      map[string]string `json:"values"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(doc.Annotations) != 1 || doc.Annotations[0] != "production" {
		t.Errorf("annotations = %v, want [production]", doc.Annotations)
	}
	if doc.Values["port"] != "8080" {
		t.Errorf("values[port] = %q, want %q", doc.Values["port"], "8080")
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	cfg, settings := writeCfg(t, "@annotation production\n\nport = 8080\nhost = example.org\n")
	dir := filepath.Dir(cfg)
	yamlPath := filepath.Join(dir, "config.yaml")
	backPath := filepath.Join(dir, "back.cfg")

	if _, _, err := runCmd(t, "--settings", settings, "convert", cfg, yamlPath); err != nil {
		t.Fatalf("convert to yaml: %v", err)
	}
	if _, _, err := runCmd(t, "--settings", settings, "convert", yamlPath, backPath); err != nil {
		t.Fatalf("convert to cfg: %v", err)
	}

	out, _, err := runCmd(t, "--file", backPath, "--settings", settings, "get", "port")
	if err != nil {
		t.Fatalf("get from converted file: %v", err)
	}
	if out != "8080\n" {
		t.Errorf("port = %q, want %q", out, "8080\n")
	}

	data, err := os.ReadFile(backPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "@annotation production\n") {
		t.Errorf("converted file = %q, want annotation header preserved", data)
	}
}

func TestCustomSyntaxFromSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.cfg")
	settings := filepath.Join(dir, ".confctl.yaml")
	if err := os.WriteFile(settings, []byte("pair_separator: \":\"\ncomment: \"#\"\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if err := os.WriteFile(cfg, []byte("# local overrides\nport:8080\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCmd(t, "--file", cfg, "--settings", settings, "get", "port")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "8080\n" {
		t.Errorf("output = %q, want %q", out, "8080\n")
	}
}

func TestBadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, ".confctl.yaml")
	if err := os.WriteFile(settings, []byte("pair_separator: \";\"\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	_, _, err := runCmd(t, "--settings", settings, "list")
	if err == nil {
		t.Fatal("expected settings validation error")
	}
}
