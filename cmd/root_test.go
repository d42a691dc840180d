package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/xmazu/envdiff/internal/config"
)

// newTestCommand returns a command whose output goes to the returned buffer.
func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	return c, &buf
}

func writeEnv(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

// isolateConfig keeps tests from reading a config outside the temp dirs.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.ConfigDirEnv, t.TempDir())
}

func TestRootCommand(t *testing.T) {
	t.Run("root command has correct metadata", func(t *testing.T) {
		if rootCmd.Name() != "envdiff" {
			t.Errorf("rootCmd.Name() = %q, want %q", rootCmd.Name(), "envdiff")
		}
		if rootCmd.Short == "" || rootCmd.Long == "" {
			t.Error("rootCmd should have Short and Long descriptions")
		}
	})

	t.Run("root command has subcommands", func(t *testing.T) {
		for _, name := range []string{"validate", "ls", "mcp"} {
			found := false
			for _, sub := range rootCmd.Commands() {
				if sub.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("subcommand %q not found", name)
			}
		}
	})

	t.Run("compare flags are registered", func(t *testing.T) {
		for _, name := range []string{"json", "show-identical", "show-values", "export", "export-from", "force"} {
			if rootCmd.Flags().Lookup(name) == nil {
				t.Errorf("flag --%s not registered", name)
			}
		}
		if rootCmd.PersistentFlags().Lookup("verbose") == nil {
			t.Error("flag --verbose not registered")
		}
	})

	t.Run("long description mentions usage", func(t *testing.T) {
		for _, s := range []string{"envdiff .env .env.production", "validate", "--show-values", ".envdiff.yaml"} {
			if !strings.Contains(rootCmd.Long, s) {
				t.Errorf("rootCmd.Long should contain %q", s)
			}
		}
	})

	t.Run("requires two files", func(t *testing.T) {
		if err := rootCmd.Args(rootCmd, []string{".env"}); err == nil {
			t.Error("Args should reject a single file")
		}
		if err := rootCmd.Args(rootCmd, []string{".env", ".env.example"}); err != nil {
			t.Errorf("Args rejected two files: %v", err)
		}
	})
}

func TestIsSilent(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errDifferencesFound, true},
		{errValidationFailed, true},
		{fmt.Errorf("compare: %w", errDifferencesFound), true},
		{fmt.Errorf("file not found"), false},
	}
	for _, tt := range tests {
		if got := isSilent(tt.err); got != tt.want {
			t.Errorf("isSilent(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestSetVersion(t *testing.T) {
	old := rootCmd.Version
	defer func() { rootCmd.Version = old }()

	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("rootCmd.Version = %q, want 1.2.3", rootCmd.Version)
	}
}
