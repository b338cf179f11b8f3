// cmd/biblioteka/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"biblioteka/internal/catalog"
	"biblioteka/internal/config"
	"biblioteka/internal/menu"
	"biblioteka/internal/storage"
)

func main() {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store := storage.NewFileStore(cfg.DataFile, log)
	svc, err := catalog.NewService(store, log)
	if err != nil {
		log.Fatal("open catalog", zap.Error(err))
	}

	if err := menu.New(svc, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal("catalog update failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
