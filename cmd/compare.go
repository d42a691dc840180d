package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/compare"
	"github.com/xmazu/envdiff/internal/config"
	"github.com/xmazu/envdiff/internal/envfile"
	"github.com/xmazu/envdiff/internal/report"
	"github.com/xmazu/envdiff/internal/tui"
)

var (
	compareJSON          bool
	compareShowIdentical bool
	compareShowValues    bool
	compareExport        string
	compareExportFrom    string
	compareForce         bool
)

func init() {
	rootCmd.Flags().BoolVar(&compareJSON, "json", false, "Output results as JSON")
	rootCmd.Flags().BoolVar(&compareShowIdentical, "show-identical", false, "Show identical variables")
	rootCmd.Flags().BoolVar(&compareShowValues, "show-values", false, "Show all values (including sensitive)")
	rootCmd.Flags().StringVar(&compareExport, "export", "", "Export missing variables to a file")
	rootCmd.Flags().StringVar(&compareExportFrom, "export-from", "first", `Source for export: "first" or "second"`)
	rootCmd.Flags().BoolVarP(&compareForce, "force", "f", false, "Overwrite the export file without asking")
}

func runCompare(cmd *cobra.Command, args []string) error {
	side, err := report.ParseSide(compareExportFrom)
	if err != nil {
		return err
	}

	first, second, cfg, err := loadInputs(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	result := compare.Compare(first, second)
	out := stdout(cmd)

	if compareJSON {
		return writeJSON(out, result)
	}

	opts := report.Options{
		ShowValues:    compareShowValues || cfg.ShowValues,
		ShowIdentical: compareShowIdentical || cfg.ShowIdentical,
		Detector:      cfg.Detector(),
	}
	if err := report.Comparison(out, result, opts); err != nil {
		return err
	}

	if compareExport != "" {
		if err := exportMissing(out, result, side); err != nil {
			return err
		}
	} else if len(result.MissingInSecond) > 0 {
		fmt.Fprintln(out, tui.Muted("Tip: Use --export <file> to export missing variables"))
	}

	if result.HasDifferences() {
		return errDifferencesFound
	}
	return nil
}

// loadInputs resolves and reads both files, then drops the keys ignored by
// the config that applies to the first file.
func loadInputs(cmd *cobra.Command, a, b string) (*envfile.File, *envfile.File, *config.Config, error) {
	pathA, err := filepath.Abs(a)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve %s: %w", a, err)
	}
	pathB, err := filepath.Abs(b)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve %s: %w", b, err)
	}

	cfg, err := config.LoadFor(pathA)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger(cmd)
	if cfg.Path() != "" {
		log.Debug("using config", "path", cfg.Path())
	}

	first, second, err := envfile.LoadPair(commandContext(cmd), pathA, pathB)
	if err != nil {
		return nil, nil, nil, err
	}

	log.Debug("loaded file", "path", first.Path(), "entries", first.Len())
	log.Debug("loaded file", "path", second.Path(), "entries", second.Len())

	filteredFirst, filteredSecond := cfg.Filter(first), cfg.Filter(second)
	if dropped := first.Len() - filteredFirst.Len() + second.Len() - filteredSecond.Len(); dropped > 0 {
		log.Debug("ignored keys", "patterns", cfg.IgnoreKeys, "dropped", dropped)
	}
	return filteredFirst, filteredSecond, cfg, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func exportMissing(out io.Writer, r *compare.Result, side report.Side) error {
	missing := report.MissingFrom(r, side)
	if len(missing) == 0 {
		fmt.Fprintln(out, tui.Warning("No missing variables to export."))
		fmt.Fprintln(out)
		return nil
	}

	if _, err := os.Stat(compareExport); err == nil && !compareForce {
		ok, err := tui.Confirm(fmt.Sprintf("%s already exists. Overwrite?", compareExport))
		if err != nil {
			return fmt.Errorf("confirm overwrite (use --force to skip): %w", err)
		}
		if !ok {
			fmt.Fprintln(out, tui.Muted("Export skipped."))
			fmt.Fprintln(out)
			return nil
		}
	}

	if err := os.WriteFile(compareExport, []byte(report.ExportContent(missing, side)), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintln(out, tui.Success(fmt.Sprintf("Exported %d variables to: %s", len(missing), compareExport)))
	fmt.Fprintln(out)
	return nil
}
