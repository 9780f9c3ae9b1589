package cmd

import (
	"github.com/huangsam/chlog/internal/iocache"
	"github.com/huangsam/chlog/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the chlog MCP server",
	Long:  `Launch an MCP server that allows AI agents to generate changelogs and list contributors via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The protocol runs over stdio, so setup must not write to stdout.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient, iocache.Manager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
