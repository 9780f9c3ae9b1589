package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/chlog/core"
	"github.com/huangsam/chlog/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	mgr     contract.CacheManager
}

// rangeConfig clones the base config and applies the range parameters
// shared by all tools.
func (h *toolHandler) rangeConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if f := request.GetString("from", ""); f != "" {
		cfg.FromRef = f
	}
	if t := request.GetString("to", ""); t != "" {
		cfg.ToRef = t
	}
	if cfg.ToRef == "" {
		cfg.ToRef = contract.DefaultToRef
	}
	return cfg
}

func (h *toolHandler) handleGenerateChangelog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.rangeConfig(request)

	result, err := core.BuildChangelog(ctx, cfg, h.client, h.mgr.GetChangelogStore())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("changelog generation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListContributors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.rangeConfig(request)
	cfg.HideAuthorEmail = request.GetBool("hide_author_email", cfg.HideAuthorEmail)

	commits, err := core.ReadCommits(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading commit history failed: %v", err)), nil
	}

	contributors := core.Contributors(commits, cfg)
	jsonData, _ := json.MarshalIndent(contributors, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
