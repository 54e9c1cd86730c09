package main

import (
	"io"
	"os"
	"time"

	"github.com/alisajid/go-cvkit/internal/assets"
	"github.com/alisajid/go-cvkit/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
	Getenv      func(string) string
	Environ     func() []string
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Getenv:      os.Getenv,
		Environ:     os.Environ,
	}
}

// assetLoaderFor returns the asset loader for a run, preferring a
// configured filesystem base path over the embedded assets.
func (e *Environment) assetLoaderFor(cfg *config.Config) (assets.AssetLoader, error) {
	if cfg != nil && cfg.Assets.BasePath != "" {
		return assets.NewFilesystemLoader(cfg.Assets.BasePath)
	}
	return e.AssetLoader, nil
}
