package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeFixture lays out an addon directory with a canonical catalog and a
// config file pointing at it.
func writeFixture(t *testing.T) (configPath string) {
	t.Helper()
	dir := t.TempDir()

	catalogDir := filepath.Join(dir, "addon", "resources", "language", "resource.language.en_gb")
	if err := os.MkdirAll(catalogDir, 0o755); err != nil {
		t.Fatalf("create catalog dir: %v", err)
	}
	catalog := strings.Join([]string{
		`msgctxt "#30100"`,
		`msgid "Play"`,
		`msgstr ""`,
		``,
		`msgctxt "#30102"`,
		`msgid "Stop"`,
		`msgstr ""`,
	}, "\n")
	if err := os.WriteFile(filepath.Join(catalogDir, "strings.po"), []byte(catalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	configPath = filepath.Join(dir, "config.toml")
	contents := fmt.Sprintf(`[paths]
addon_dir = %q
profile_dir = %q
log_dir = %q
`, filepath.Join(dir, "addon"), filepath.Join(dir, "profile"), filepath.Join(dir, "logs"))
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "scrobbler "+version) {
		t.Errorf("output = %q", out)
	}
}

func TestStringsLookup(t *testing.T) {
	configPath := writeFixture(t)

	out, err := runCommand(t, "--config", configPath, "strings", "lookup", "Play")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if strings.TrimSpace(out) != "Play" {
		t.Errorf("output = %q, want Play", out)
	}
}

func TestStringsLookupUnknown(t *testing.T) {
	configPath := writeFixture(t)

	_, err := runCommand(t, "--config", configPath, "strings", "lookup", "NoSuchString")
	if err == nil {
		t.Fatal("expected error for unknown string")
	}
}

func TestStringsRebuild(t *testing.T) {
	configPath := writeFixture(t)

	out, err := runCommand(t, "--config", configPath, "strings", "rebuild")
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if !strings.Contains(out, "2 strings") {
		t.Errorf("output = %q", out)
	}
}

func TestStringsDump(t *testing.T) {
	configPath := writeFixture(t)

	out, err := runCommand(t, "--config", configPath, "strings", "dump")
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if !strings.Contains(out, "30100") || !strings.Contains(out, "Stop") {
		t.Errorf("output = %q", out)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	if _, err := runCommand(t, "--config", configPath, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := runCommand(t, "--config", configPath, "config", "init"); err == nil {
		t.Fatal("second init should refuse to overwrite")
	}
	if _, err := runCommand(t, "--config", configPath, "config", "init", "--force"); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
}
