package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings Hawker needs to reach the marketplace API.
// Values come from the config file, overridden by HAWKER_* environment
// variables.
type Config struct {
	APIURL    string `toml:"api_url" env:"HAWKER_API_URL"`
	PageSize  int    `toml:"page_size" env:"HAWKER_PAGE_SIZE"`
	TokenPath string `toml:"token_path" env:"HAWKER_TOKEN_PATH"`
	// Token is never read from the config file; it comes from the
	// environment or from the token file at TokenPath.
	Token string `toml:"-" env:"HAWKER_TOKEN"`
}

const (
	defaultConfigPath = "~/.config/hawker/config.toml"
	defaultTokenPath  = "~/.config/hawker/token"
	defaultAPIURL     = "127.0.0.1:8000"
	defaultPageSize   = 12
)

// Load locates and parses the config, falling back to defaults when the
// file is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer func() { _ = file.Close() }()
		bytes, readErr := io.ReadAll(file)
		if readErr != nil {
			return Config{}, fmt.Errorf("read config: %w", readErr)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply below.
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	cfg.TokenPath = strings.TrimSpace(cfg.TokenPath)
	if cfg.TokenPath == "" {
		cfg.TokenPath = defaultTokenPath
	}
	cfg.TokenPath = mustExpand(cfg.TokenPath)

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
