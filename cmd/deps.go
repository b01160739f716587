package cmd

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"leadlog/internal/config"
	"leadlog/internal/storage"
	"leadlog/internal/store"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	Now    func() time.Time

	Config config.Config
	Logger *zap.Logger

	// OpenStore resolves the data directory and opens the store. Tests
	// replace it to point at a temp directory.
	OpenStore func() (*store.Store, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	cfg := config.DefaultConfig()
	if configPath, err := config.GetConfigPath(); err == nil {
		if loaded, err := config.LoadOrDefault(configPath); err == nil {
			cfg = loaded
		}
	}

	logger := newLogger(cfg.LogLevel)

	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Now:    time.Now,
		Config: cfg,
		Logger: logger,
		OpenStore: func() (*store.Store, error) {
			dir := cfg.DataDir
			if dir == "" {
				var err error
				dir, err = storage.DataDir()
				if err != nil {
					return nil, err
				}
			}
			return store.Open(dir, logger), nil
		},
	}
}

// newLogger builds the CLI logger writing to stderr at the configured level.
func newLogger(level string) *zap.Logger {
	lvl := zapcore.WarnLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
