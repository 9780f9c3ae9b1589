// Package cmd defines the command-line interface for chlog.
package cmd

import (
	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("from", "", "Start reference of the range, exclusive (empty = full history)")
	rootCmd.PersistentFlags().String("to", contract.DefaultToRef, "End reference of the range, inclusive")
	rootCmd.PersistentFlags().String("dir", "", "Path to the git repository (defaults to the positional argument or .)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Changelog file to splice the result into (default: print to stdout)")
	rootCmd.PersistentFlags().String("exclude-authors", "", "Comma-separated author names or emails to exclude (exact match)")
	rootCmd.PersistentFlags().Bool("hide-author-email", false, "List contributors by name only")
	rootCmd.PersistentFlags().Bool("no-dates", false, "Omit the release date from the changelog header")
	rootCmd.PersistentFlags().String("repo-url", "", "Hosting URL override for commit and compare links")
	// No shorthand here: -v belongs to the version flag.
	rootCmd.PersistentFlags().Bool("verbose", false, "Print progress details to stderr")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of generateCmd to Viper
	generateCmd.Flags().Bool("stats", false, "Print a per-section summary table after the changelog")
	generateCmd.Flags().Bool("no-cache", false, "Skip the cache and regenerate from git history")
	if err := viper.BindPFlags(generateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding generate flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("format", string(schema.ParquetFormat), "Export format: parquet or csv or json")
	exportCmd.Flags().String("export-file", contract.DefaultExportFile, "File to write exported commit records to")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
