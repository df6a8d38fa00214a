package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// GlobalFlags holds global flags available to all commands
type GlobalFlags struct {
	Verbose      bool
	Quiet        bool
	OutputFormat string
}

// RegisterGlobalFlags registers persistent flags on the root command
func RegisterGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only log warnings and errors")
	cmd.PersistentFlags().StringVarP(&flags.OutputFormat, "output", "o", string(FormatText), "Output format (text|json)")
}

// Validate checks flag combinations.
func (f *GlobalFlags) Validate() error {
	if f.OutputFormat != string(FormatText) && f.OutputFormat != string(FormatJSON) {
		return fmt.Errorf("invalid --output %q (want text or json)", f.OutputFormat)
	}
	if f.Verbose && f.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	return nil
}

// GetOutputFormat returns the parsed OutputFormat enum
func (f *GlobalFlags) GetOutputFormat() OutputFormat {
	if f.OutputFormat == string(FormatJSON) {
		return FormatJSON
	}
	return FormatText
}

// LogLevel maps verbosity flags to a slog level.
func (f *GlobalFlags) LogLevel() slog.Level {
	switch {
	case f.Quiet:
		return slog.LevelWarn
	case f.Verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger on w at the level selected by the flags.
func (f *GlobalFlags) NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: f.LogLevel(),
	})
	return slog.New(handler)
}
