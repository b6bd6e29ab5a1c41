// Package logger builds the application's zap logger. Output goes to a file
// so it never interleaves with the terminal UI.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/secplus/internal/config"
)

// New returns a production (JSON) or development (console) logger writing
// to cfg.Log.File. An empty file disables logging.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	if cfg.Log.File != "stderr" && cfg.Log.File != "stdout" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.Log.File}
	zc.ErrorOutputPaths = []string{cfg.Log.File}

	return zc.Build()
}
