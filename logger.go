package evil

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger writing to stderr at the given
// verbosity: off, error, warn, info or debug.
func NewLogger(verbosity string) (*zap.Logger, error) {
	if verbosity == "off" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(verbosity)); err != nil {
		return nil, fmt.Errorf("evil: invalid verbosity %q", verbosity)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg.Build()
}
