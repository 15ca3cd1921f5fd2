// Package cmd provides CLI commands for citeproc-go.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

// usageError marks a failure that should exit 2 (bad arguments/flags)
// rather than 1 (validation or render failure), per §6 exit codes.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func newUsageError(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

var rootCmd = &cobra.Command{
	Use:   "citeproc-go",
	Short: "Render bibliographic citations and references from a CSL-like style",
	Long: `citeproc-go renders citation clusters and bibliographies from a
declarative style file, a locale file, and JSON reference/citation input.

Examples:
  citeproc-go render refs --style apa.yaml --references refs.json
  citeproc-go render doc --style apa.yaml --references refs.json --document paper.txt
  citeproc-go check --style apa.yaml --references refs.json
  citeproc-go convert --style apa.yaml --to json`,
	SilenceUsage: true,
}

// Execute runs the root command, exiting 2 on a usage error, 1 on any
// other returned error, 0 otherwise (§6 "Exit codes").
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ue usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
}
