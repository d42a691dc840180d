package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio) for AI/IDE integration",
	Long:  `Run the Model Context Protocol server on stdio. Exposes compare_env_files (compare two dotenv files), validate_env_file (check a file against its template) and list_env_files (find dotenv files and templates). Sensitive values are masked unless a tool is called with show_values.`,
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	return mcpserver.Run(commandContext(cmd), rootCmd.Version)
}
