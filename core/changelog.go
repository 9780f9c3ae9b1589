package core

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/internal/hosting"
	"github.com/huangsam/chlog/schema"
)

// BuildChangelog runs the whole pipeline: read history, parse, group,
// aggregate contributors, render. The result is served from the changelog
// cache when an entry for the same resolved range and options exists.
func BuildChangelog(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.CacheStore) (*schema.ChangelogResult, error) {
	key, err := cacheKey(ctx, cfg, client)
	if err == nil && store != nil && !cfg.NoCache {
		if cached := lookupCache(store, key); cached != nil {
			contract.LogVerbose(cfg.Verbose, "Serving changelog for %s from cache", cfg.ToRef)
			return cached, nil
		}
	}

	result, err := buildFresh(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	if store != nil && !cfg.NoCache && key != "" {
		storeCache(store, key, result)
	}
	return result, nil
}

// buildFresh generates a changelog without touching the cache.
func buildFresh(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.ChangelogResult, error) {
	raws, err := client.Log(ctx, cfg.RepoPath, cfg.FromRef, cfg.ToRef)
	if err != nil {
		return nil, fmt.Errorf("reading commit history: %w", err)
	}
	contract.LogVerbose(cfg.Verbose, "Read %d commits for %s", len(raws), rangeLabel(cfg))

	commits := ParseCommits(raws)
	sections := GroupCommits(commits, cfg)
	contributors := Contributors(commits, cfg)
	compareURL := hosting.CompareURL(cfg.RepoURL, cfg.FromRef, cfg.ToRef)

	return &schema.ChangelogResult{
		Document:     RenderMarkdown(sections, contributors, cfg, compareURL),
		Sections:     sections,
		Contributors: contributors,
		FromRef:      cfg.FromRef,
		ToRef:        cfg.ToRef,
		CompareURL:   compareURL,
	}, nil
}

// ReadCommits reads and parses the configured range without grouping.
// Used by the export surface, which wants the flat commit sequence.
func ReadCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.Commit, error) {
	raws, err := client.Log(ctx, cfg.RepoPath, cfg.FromRef, cfg.ToRef)
	if err != nil {
		return nil, fmt.Errorf("reading commit history: %w", err)
	}
	return ParseCommits(raws), nil
}

// cacheKey builds a deterministic key from the resolved range and the
// options that affect rendered output. Refs are resolved to hashes so a
// moving HEAD never serves a stale document, and the render date is
// included when the header carries one so a dated document only hits
// the cache on the day it was built.
func cacheKey(ctx context.Context, cfg *contract.Config, client contract.GitClient) (string, error) {
	toHash, err := client.ResolveRef(ctx, cfg.RepoPath, cfg.ToRef)
	if err != nil {
		return "", err
	}
	fromHash := ""
	if cfg.FromRef != "" {
		if fromHash, err = client.ResolveRef(ctx, cfg.RepoPath, cfg.FromRef); err != nil {
			return "", err
		}
	}
	renderDate := ""
	if !cfg.NoDates {
		renderDate = renderClock().Format(dateHeaderFormat)
	}

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%t|%t|%v|%s",
		cfg.RepoPath, fromHash, toHash, cfg.FromRef, cfg.RepoURL,
		cfg.HideAuthorEmail, cfg.NoDates, cfg.ExcludeAuthors, renderDate)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// lookupCache returns the cached result for key, or nil on miss, version
// mismatch or decode failure. Cache problems never fail generation.
func lookupCache(store contract.CacheStore, key string) *schema.ChangelogResult {
	value, version, _, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			contract.LogWarn("cache lookup failed", err)
		}
		return nil
	}
	if version != contract.CacheSchemaVersion {
		return nil
	}

	var result schema.ChangelogResult
	if err := json.Unmarshal(value, &result); err != nil {
		contract.LogWarn("cache entry corrupt", err)
		return nil
	}
	return &result
}

// storeCache persists a freshly built result; failures are non-fatal.
func storeCache(store contract.CacheStore, key string, result *schema.ChangelogResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		contract.LogWarn("cache encode failed", err)
		return
	}
	if err := store.Set(key, payload, contract.CacheSchemaVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("cache write failed", err)
	}
}

// rangeLabel describes the configured range for progress output.
func rangeLabel(cfg *contract.Config) string {
	if cfg.FromRef == "" {
		return cfg.ToRef
	}
	return cfg.FromRef + ".." + cfg.ToRef
}
