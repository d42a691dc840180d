package cmd

import (
	"strings"
	"testing"
)

func TestRunLs(t *testing.T) {
	t.Run("lists env files and templates in tree", func(t *testing.T) {
		tmp := t.TempDir()
		for _, name := range []string{".env", ".env.example", "sub/.env.local", "node_modules/pkg/.env"} {
			writeEnv(t, tmp, name, "")
		}
		c, out := newTestCommand()

		if err := runLs(c, []string{tmp}); err != nil {
			t.Fatalf("runLs(): %v", err)
		}
		got := out.String()
		for _, want := range []string{".env", ".env.example (template)", "sub", ".env.local"} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q:\n%s", want, got)
			}
		}
		if strings.Contains(got, "node_modules") {
			t.Errorf("node_modules should be skipped:\n%s", got)
		}
	})

	t.Run("pattern filter", func(t *testing.T) {
		tmp := t.TempDir()
		for _, name := range []string{".env", "apps/web/.env", "apps/api/.env.example"} {
			writeEnv(t, tmp, name, "")
		}
		lsPattern = "apps/web/**"
		defer func() { lsPattern = "" }()
		c, out := newTestCommand()

		if err := runLs(c, []string{tmp}); err != nil {
			t.Fatalf("runLs(): %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "web") || strings.Contains(got, "api") {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("workspace root detected without argument", func(t *testing.T) {
		tmp := t.TempDir()
		writeEnv(t, tmp, "go.mod", "module example.com/app\n")
		writeEnv(t, tmp, ".env", "")
		writeEnv(t, tmp, "cmd/app/.keep", "")
		t.Chdir(tmp + "/cmd/app")
		c, out := newTestCommand()

		if err := runLs(c, nil); err != nil {
			t.Fatalf("runLs(): %v", err)
		}
		if !strings.Contains(out.String(), "Workspace:") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("empty directory produces no output", func(t *testing.T) {
		c, out := newTestCommand()
		if err := runLs(c, []string{t.TempDir()}); err != nil {
			t.Fatalf("runLs(): %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("output = %q, want empty", out.String())
		}
	})

	t.Run("invalid directory returns error", func(t *testing.T) {
		if err := runLs(nil, []string{"/nonexistent-path-12345"}); err == nil {
			t.Error("runLs(nonexistent) should error")
		}
	})
}
