// Package logging builds the process logger: the log/slog API on top of a zap core.
package logging

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds a logger for the given level (debug, info, warn, error) and
// format (json or console). The returned sync function flushes buffered
// entries and should be deferred by main.
func New(level, format string) (*slog.Logger, func() error, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var config zap.Config
	switch strings.ToLower(format) {
	case FormatJSON:
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case FormatConsole:
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, nil, fmt.Errorf("log format %q is not %s or %s", format, FormatJSON, FormatConsole)
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, nil, err
	}

	return slog.New(zapslog.NewHandler(zapLogger.Core())), zapLogger.Sync, nil
}
