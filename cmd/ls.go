package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/tui"
	"github.com/xmazu/envdiff/internal/workspace"
)

var lsCmd = &cobra.Command{
	Use:   "ls [directory]",
	Short: "List .env files in a directory tree",
	Long: `Discover and list .env, .env.* and template files (.env.example, .env.sample, ...)
under the given directory. Without a directory, auto-detects the workspace root and
lists every dotenv file within it. Output is a simple tree; templates are marked.

Use --pattern to keep only relative paths matching a glob (e.g. 'apps/**').`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

var lsPattern string

func init() {
	lsCmd.Flags().StringVarP(&lsPattern, "pattern", "p", "", "Only list paths matching this glob (supports **)")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	var root string

	explicitDir := len(args) == 1

	if !explicitDir {
		wsRoot, err := workspace.FindRoot(".")
		if err != nil {
			return fmt.Errorf("detect workspace: %w", err)
		}

		if workspace.IsWorkspace(wsRoot) {
			root = wsRoot
		} else {
			root = "."
		}
	} else {
		root = args[0]
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	files, err := workspace.ListEnvFiles(root, lsPattern)
	if err != nil {
		return fmt.Errorf("list .env files: %w", err)
	}
	logger(cmd).Debug("listed env files", "root", root, "pattern", lsPattern, "count", len(files))
	if len(files) == 0 {
		return nil
	}

	out := stdout(cmd)
	if !explicitDir && workspace.IsWorkspace(root) {
		marker := workspace.FindMarker(root)
		fmt.Fprintf(out, "%s%s (%s)\n\n", tui.Label("Workspace: "), root, workspace.FormatMarkerForDisplay(marker))
	}

	tree := workspace.BuildEnvTree(files)
	workspace.PrintEnvTree(out, tree, func(f *workspace.EnvFile) string {
		name := filepath.Base(f.Path)
		if f.Kind == workspace.KindTemplate {
			return name + " " + tui.Muted("(template)")
		}
		return name
	})
	return nil
}
