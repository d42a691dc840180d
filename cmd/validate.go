package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/compare"
	"github.com/xmazu/envdiff/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate [env-file] [example-file]",
	Short: "Validate .env file against .env.example",
	Long: `Check that every variable declared in the example file is present in the env file.
Variables in the env file that the example does not declare are reported as warnings,
or as failures with --strict.

Defaults to .env and .env.example in the current directory. Exits 1 when validation
fails; with --json the result is printed and the exit code is 0.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runValidate,
}

var (
	validateStrict bool
	validateJSON   bool
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Fail if env has extra variables not in example")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	envPath, examplePath := ".env", ".env.example"
	if len(args) > 0 {
		envPath = args[0]
	}
	if len(args) > 1 {
		examplePath = args[1]
	}

	template, concrete, cfg, err := loadInputs(cmd, examplePath, envPath)
	if err != nil {
		return err
	}

	v := compare.Validate(template, concrete, validateStrict || cfg.Strict)
	logger(cmd).Debug("validated", "file", v.File, "template", v.Template, "valid", v.Valid)

	out := stdout(cmd)
	if validateJSON {
		return writeJSON(out, v)
	}
	if err := report.Validation(out, v); err != nil {
		return err
	}
	if !v.Valid {
		return errValidationFailed
	}
	return nil
}
