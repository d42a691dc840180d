package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/logging"
)

// errDifferencesFound and errValidationFailed end the process with exit
// code 1 after the report has been printed.
var (
	errDifferencesFound = errors.New("differences found")
	errValidationFailed = errors.New("validation failed")
)

var rootCmd = &cobra.Command{
	Use:           "envdiff <file1> <file2>",
	Short:         "Compare .env files and find missing or different variables",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `envdiff compares two dotenv files and reports the variables missing from
either file and the variables whose values differ.

Values of sensitive variables (names containing secret, password, key, token,
auth, credential or private) are masked unless --show-values is given.

EXIT CODES:

  0  no differences
  1  differences found, validation failed, or an error occurred
     (--json always exits 0 when the files were compared)

EXAMPLES:

  envdiff .env .env.production
  envdiff .env .env.staging --show-identical --show-values
  envdiff .env .env.production --json
  envdiff .env .env.production --export missing.env

  # Check .env against its template
  envdiff validate
  envdiff validate .env .env.example --strict

CONFIG:

  An optional .envdiff.yaml at the workspace root (or ~/.config/envdiff/config.yaml)
  may set sensitive_keys, ignore_keys, strict, show_values and show_identical.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := logging.New(os.Stderr, verbose)
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	// Cobra adds --version when Version is set; use a clear template
	rootCmd.SetVersionTemplate("envdiff version {{.Version}}\n")
}

// SetVersion sets the version string shown by --version (e.g. from ldflags).
func SetVersion(v string) { rootCmd.Version = v }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !isSilent(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func isSilent(err error) bool {
	return errors.Is(err, errDifferencesFound) || errors.Is(err, errValidationFailed)
}

func stdout(cmd *cobra.Command) io.Writer {
	if cmd != nil {
		return cmd.OutOrStdout()
	}
	return os.Stdout
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func logger(cmd *cobra.Command) *slog.Logger {
	return logging.FromContext(commandContext(cmd))
}
