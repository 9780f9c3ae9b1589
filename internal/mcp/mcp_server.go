// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the chlog MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Changelog Generation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		mgr:     mgr,
	}

	// --- 1. Tool: generate_changelog ---
	s.AddTool(mcp.NewTool("generate_changelog",
		mcp.WithDescription("Generate a conventional-commit changelog for a git commit range."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("from", mcp.Description("Start reference of the range, exclusive (e.g., a tag). Empty means the full history.")),
		mcp.WithString("to", mcp.Description("End reference of the range, inclusive. Defaults to HEAD.")),
	), h.handleGenerateChangelog)

	// --- 2. Tool: list_contributors ---
	s.AddTool(mcp.NewTool("list_contributors",
		mcp.WithDescription("List the deduplicated contributors for a git commit range."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("from", mcp.Description("Start reference of the range, exclusive.")),
		mcp.WithString("to", mcp.Description("End reference of the range, inclusive. Defaults to HEAD.")),
		mcp.WithBoolean("hide_author_email", mcp.Description("When true, contributors are listed by name only.")),
	), h.handleListContributors)

	return s
}

// StartMCPServer starts the chlog MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, client, mgr)
	return server.ServeStdio(s)
}
