package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig with no file: %v", err)
	}
	if cfg.Indent != 2 || cfg.Strict {
		t.Errorf("defaults = %+v, want indent 2, strict false", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	if err := os.WriteFile(path, []byte("indent = 4\nstrict = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Indent != 4 || !cfg.Strict {
		t.Errorf("cfg = %+v, want indent 4, strict true", cfg)
	}
}

func TestLoadConfigDiscoversDefaultFile(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(configFile, []byte("strict = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Strict {
		t.Error("config file in working directory was not picked up")
	}
	if cfg.Indent != 2 {
		t.Errorf("unset keys should keep defaults, indent = %d", cfg.Indent)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := loadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("explicit missing config path should fail")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("indent = \"two\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil {
		t.Error("unparseable config should fail")
	}

	negative := filepath.Join(dir, "neg.toml")
	if err := os.WriteFile(negative, []byte("indent = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(negative); err == nil {
		t.Error("negative indent should fail")
	}
}
