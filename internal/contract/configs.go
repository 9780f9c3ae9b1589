package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/chlog/schema"
)

// Default values for configuration.
const (
	DefaultToRef      = "HEAD"
	DefaultRepoPath   = "."
	ChangelogTitle    = "# Changelog"
	DefaultExportFile = "commits.parquet"
)

// CacheSchemaVersion tags cached changelog payloads; bump it whenever the
// rendered format or the ChangelogResult shape changes.
const CacheSchemaVersion = 1

// Config holds the runtime configuration for changelog generation.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath        string
	FromRef         string
	ToRef           string
	OutputFile      string
	ExcludeAuthors  []string
	HideAuthorEmail bool
	NoDates         bool
	RepoURL         string
	Verbose         bool
	Stats           bool
	NoCache         bool
	Width           int // Terminal width override (0 = auto-detect)

	Format     schema.OutputFormat
	ExportFile string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	From            string `mapstructure:"from"`
	To              string `mapstructure:"to"`
	Dir             string `mapstructure:"dir"`
	OutputFile      string `mapstructure:"output"`
	ExcludeAuthors  string `mapstructure:"exclude-authors"`
	HideAuthorEmail bool   `mapstructure:"hide-author-email"`
	NoDates         bool   `mapstructure:"no-dates"`
	RepoURL         string `mapstructure:"repo-url"`
	Verbose         bool   `mapstructure:"verbose"`
	Width           int    `mapstructure:"width"`
	CacheBackend    string `mapstructure:"cache-backend"`
	CacheDBConnect  string `mapstructure:"cache-db-connect"`
	Color           string `mapstructure:"color"`

	// --- Fields from generateCmd.Flags() ---
	Stats   bool `mapstructure:"stats"`
	NoCache bool `mapstructure:"no-cache"`

	// --- Fields from exportCmd.Flags() ---
	Format     string `mapstructure:"format"`
	ExportFile string `mapstructure:"export-file"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ExcludeAuthors != nil {
		clone.ExcludeAuthors = make([]string, len(c.ExcludeAuthors))
		copy(clone.ExcludeAuthors, c.ExcludeAuthors)
	}
	return &clone
}

// IsExcluded reports whether a commit author is on the exclusion list.
// Matching is case-sensitive exact equality against the display name OR
// the email address.
func (c *Config) IsExcluded(name, email string) bool {
	for _, ex := range c.ExcludeAuthors {
		if ex == name || ex == email {
			return true
		}
	}
	return false
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, inspector RepoInspector, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return resolveRepoPath(cfg, inspector, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.FromRef = strings.TrimSpace(input.From)
	cfg.ToRef = strings.TrimSpace(input.To)
	if cfg.ToRef == "" {
		cfg.ToRef = DefaultToRef
	}

	cfg.OutputFile = input.OutputFile
	cfg.HideAuthorEmail = input.HideAuthorEmail
	cfg.NoDates = input.NoDates
	cfg.RepoURL = strings.TrimSuffix(strings.TrimSpace(input.RepoURL), "/")
	cfg.Verbose = input.Verbose
	cfg.Stats = input.Stats
	cfg.NoCache = input.NoCache

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative: %d", input.Width)
	}
	cfg.Width = input.Width

	// Comma-separated author exclusions; blanks dropped, values kept verbatim
	// because exclusion matching is exact and case-sensitive.
	cfg.ExcludeAuthors = nil
	for _, a := range strings.Split(input.ExcludeAuthors, ",") {
		if a = strings.TrimSpace(a); a != "" {
			cfg.ExcludeAuthors = append(cfg.ExcludeAuthors, a)
		}
	}

	format := schema.OutputFormat(strings.ToLower(input.Format))
	if format == "" {
		format = schema.MarkdownFormat
	}
	if _, ok := schema.ValidOutputFormats[format]; !ok {
		return fmt.Errorf("invalid format '%s'. must be markdown, json, csv, parquet", input.Format)
	}
	cfg.Format = format
	cfg.ExportFile = input.ExportFile

	cfg.UseColors = parseBoolish(input.Color, true)
	return nil
}

// validateBackendConfig validates the cache backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// resolveRepoPath validates the target directory and confirms it is a git
// repository. A missing or non-repo directory is a user-visible fatal error.
func resolveRepoPath(cfg *Config, inspector RepoInspector, input *ConfigRawInput) error {
	dir := strings.TrimSpace(input.Dir)
	if dir == "" {
		dir = input.RepoPathStr
	}
	if dir == "" {
		dir = DefaultRepoPath
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	if inspector != nil && !inspector.IsRepository(dir) {
		return fmt.Errorf("%w: %s", ErrNotARepository, dir)
	}

	cfg.RepoPath = dir
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// parseBoolish interprets yes/no style flag values leniently.
func parseBoolish(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
