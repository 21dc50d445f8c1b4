package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/kata/pkg/errors"
	"github.com/matzehuels/kata/pkg/observability"
)

// execute runs the root command with args against an empty config home.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(configEnv, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	var out, errOut bytes.Buffer
	c := New(&errOut, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"escape", []string{"run", "escape-html", "<b>&</b>"}, "&lt;b&gt;&amp;&lt;/b&gt;\n"},
		{"joined words", []string{"run", "break-camel-case", "camelCasingTest"}, "camel Casing Test\n"},
		{"negative numbers", []string{"run", "min", "3", "-7", "2"}, "-7\n"},
		{"delete nth", []string{"run", "delete-nth", "20", "37", "20", "21"}, "[20 37 21]\n"},
		{"cap flag", []string{"run", "--cap", "2", "delete-nth", "a", "a", "a"}, "[a a]\n"},
		{"width and pad flags", []string{"run", "--width", "3", "--pad", "*", "group", "abcde"}, "[abc de*]\n"},
		{"classifier", []string{"run", "categorize", "55,8", "54,8"}, "Senior Open\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error: %v", tt.args, err)
			}
			if out != tt.want {
				t.Errorf("execute(%v) = %q, want %q", tt.args, out, tt.want)
			}
		})
	}
}

func TestRunCommandErrors(t *testing.T) {
	t.Run("unknown kata", func(t *testing.T) {
		_, stderr, err := execute(t, "run", "fizzbuzz")
		if !errors.Is(err, errors.ErrCodeNotFound) {
			t.Fatalf("error = %v, want NOT_FOUND", err)
		}
		if !strings.Contains(stderr, "kata list") {
			t.Errorf("stderr = %q, want a hint to run kata list", stderr)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := execute(t, "run", "min")
		if !errors.Is(err, errors.ErrCodeEmptyInput) {
			t.Errorf("error = %v, want EMPTY_INPUT", err)
		}
	})

	t.Run("bad pad flag", func(t *testing.T) {
		_, _, err := execute(t, "run", "--pad", "ab", "group", "abc")
		if !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("error = %v, want INVALID_ARGUMENT", err)
		}
	})

	t.Run("no kata name", func(t *testing.T) {
		_, _, err := execute(t, "run")
		if !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("error = %v, want INVALID_ARGUMENT", err)
		}
	})

	t.Run("extra argument", func(t *testing.T) {
		_, _, err := execute(t, "run", "square", "2", "3")
		if !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("error = %v, want INVALID_ARGUMENT", err)
		}
	})
}

func TestRunUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kata.toml")
	if err := os.WriteFile(path, []byte("group_width = 4\npad = \".\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", path, "run", "group", "abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[abcd ef..]\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"escape-html", "delete-nth", "categorize", "Summary", "katas"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestListCommandKind(t *testing.T) {
	out, _, err := execute(t, "list", "--kind", "tally")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "mumble") {
		t.Error("tally list should contain mumble")
	}
	if strings.Contains(out, "escape-html") {
		t.Error("tally list should not contain text katas")
	}

	out, _, err = execute(t, "list", "--kind", " Tally ")
	if err != nil {
		t.Fatalf("list --kind with mixed case: %v", err)
	}
	if !strings.Contains(out, "mumble") {
		t.Error("kind names should match regardless of case and surrounding space")
	}

	_, _, err = execute(t, "list", "--kind", "poetry")
	if !errors.Is(err, errors.ErrCodeUnrecognized) {
		t.Errorf("error = %v, want UNRECOGNIZED", err)
	}
}

func TestVerboseLogsRuns(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "run", "xo", "xo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "running kata") {
		t.Errorf("verbose stderr = %q, want run log", stderr)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "kata") {
		t.Error("bash completion should mention the command name")
	}

	if _, _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "kata ") {
		t.Errorf("version output = %q", out)
	}
}
