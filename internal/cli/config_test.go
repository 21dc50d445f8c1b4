package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/kata/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv(configEnv, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.GroupWidth != 2 || cfg.Pad != "_" || cfg.DeleteCap != 1 || cfg.Verbose {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
verbose = true
group_width = 3
pad = "*"
delete_cap = 2

[grep]
ignore_case = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if !cfg.Verbose || cfg.GroupWidth != 3 || cfg.Pad != "*" || cfg.DeleteCap != 2 || !cfg.Grep.IgnoreCase {
		t.Errorf("loadConfig() = %+v", cfg)
	}
	if cfg.path != path {
		t.Errorf("path = %q, want %q", cfg.path, path)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Pad != '*' || opts.GroupWidth != 3 || opts.DeleteCap != 2 {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "delete_cap = 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DeleteCap != 4 || cfg.GroupWidth != 2 || cfg.Pad != "_" {
		t.Errorf("loadConfig() = %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(configEnv, writeConfig(t, "group_width = 5\n"))

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GroupWidth != 5 {
		t.Errorf("GroupWidth = %d, want 5", cfg.GroupWidth)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{
			name: "explicit missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.toml") },
			code: errors.ErrCodeFileNotFound,
		},
		{
			name: "syntax error",
			path: func(t *testing.T) string { return writeConfig(t, "group_width = \n") },
			code: errors.ErrCodeInvalidArgument,
		},
		{
			name: "unknown key",
			path: func(t *testing.T) string { return writeConfig(t, "grup_width = 3\n") },
			code: errors.ErrCodeInvalidArgument,
		},
		{
			name: "zero width",
			path: func(t *testing.T) string { return writeConfig(t, "group_width = 0\n") },
			code: errors.ErrCodeInvalidArgument,
		},
		{
			name: "long pad",
			path: func(t *testing.T) string { return writeConfig(t, "pad = \"--\"\n") },
			code: errors.ErrCodeInvalidArgument,
		},
		{
			name: "negative cap",
			path: func(t *testing.T) string { return writeConfig(t, "delete_cap = -1\n") },
			code: errors.ErrCodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.code)
			}
		})
	}
}
