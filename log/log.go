package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "charm.land/log/v2"
)

// Level is a log severity name accepted on the command line.
type Level string

// Severity levels, from least to most verbose.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format is a log output format.
type Format string

const (
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
	// FormatLogfmt writes key=value pairs.
	FormatLogfmt Format = "logfmt"
	// FormatText writes human-oriented lines for terminals.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

var (
	allLevels  = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
	allFormats = []Format{FormatJSON, FormatLogfmt, FormatText}
)

// GetAllLevelStrings returns the accepted level names, for help text and
// completions.
func GetAllLevelStrings() []string {
	out := make([]string, 0, len(allLevels))
	for _, l := range allLevels {
		out = append(out, string(l))
	}

	return out
}

// GetAllFormatStrings returns the accepted format names.
func GetAllFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}

// ParseLevel parses a level name, case-insensitively. "warning" is accepted
// as [LevelWarn].
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(s)); l {
	case LevelError, LevelWarn, LevelInfo, LevelDebug:
		return l, nil
	case "warning":
		return LevelWarn, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogLevel, s)
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, s)
}

// Slog returns the [slog.Level] for l. Unknown levels map to info.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func (l Level) charm() charmlog.Level {
	switch l {
	case LevelError:
		return charmlog.ErrorLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelDebug:
		return charmlog.DebugLevel
	}

	return charmlog.InfoLevel
}

// NewHandler creates a [slog.Handler] writing to w at the given level and
// format. [FormatText] is rendered by charm log; unknown formats fall back to
// it.
func NewHandler(w io.Writer, lvl Level, f Format) slog.Handler {
	switch f {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl.Slog()})
	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl.Slog()})
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level: lvl.charm(),
	})
}

// NewHandlerFromStrings parses level and format names and calls
// [NewHandler].
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, f), nil
}
