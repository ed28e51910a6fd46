package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger for the given environment.
// prod writes JSON, local/dev write colored console output, test discards
// everything. A non-empty level (debug, info, warn, error) overrides the
// environment default.
func NewLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "prod":
		cfg = zap.NewProductionConfig()
	case "local", "dev":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "test":
		return zap.NewNop(), nil
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", env)
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.Named("colmap"), nil
}
