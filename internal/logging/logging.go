// Package logging builds the CLI's slog logger from the --loglevel and
// --logformat flags. The logger travels in the command context and is read
// back with slogcontext.FromCtx.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"
)

const (
	flagLevel  = "loglevel"
	flagFormat = "logformat"
)

// RegisterFlags adds the logging flags to cmd and its children.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flagLevel, "warn", "set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String(flagFormat, "text", "set the log format (text, json)")
}

// BaseLogger builds the logger selected by cmd's logging flags. Logs go to
// the command's error stream so they never mix with command output.
func BaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := ParseLevel(cmd.Flag(flagLevel).Value.String())
	if err != nil {
		return nil, err
	}
	return New(cmd.ErrOrStderr(), cmd.Flag(flagFormat).Value.String(), level)
}

// New returns a logger writing to w in the given format.
func New(w io.Writer, format string, level slog.Level) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	return slog.New(slogcontext.NewHandler(handler, nil)), nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", name)
	}
}
