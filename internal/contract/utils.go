package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	BreakingColor = color.New(color.FgRed, color.Bold)    // breaking-change markers
	ScopeColor    = color.New(color.FgCyan)               // scope labels
	HeadingColor  = color.New(color.FgYellow, color.Bold) // section headings in verbose output
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogVerbose logs a progress message to stderr when verbose mode is on.
func LogVerbose(enabled bool, format string, args ...any) {
	if enabled {
		_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chlog_cache.db"
	}
	return filepath.Join(homeDir, ".chlog_cache.db")
}

// TruncateText truncates a string to a maximum width with an ellipsis suffix.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if maxWidth > 3 && len(runes) > maxWidth {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}
