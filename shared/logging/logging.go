// Package logging builds the structured logger used by the binaries.
package logging

import (
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap"
	"fmt"
)

// New builds a zap logger writing to stderr at the named level ("debug", "info", "warn", "error").
// Development loggers print human-readable lines; production loggers print JSON.
func New(level string, development bool) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableCaller = true
	
	return config.Build()
}
