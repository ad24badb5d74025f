// Package config loads the HTTP server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server-level settings. Database and Redis settings are owned by their platform packages.
type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string
	CORSEnabled        bool
	CORSOrigins        []string
	RegisterRatePerMin int
	RegisterBurst      int
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are ignored; variables already set are never overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the server configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "3333"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
		CORSOrigins: []string{getenv("CORS_ORIGIN", "http://localhost:3000")},
	}

	var err error
	if cfg.CORSEnabled, err = getBool("CORS_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.RegisterRatePerMin, err = getInt("REGISTER_RATE_PER_MIN", 10); err != nil {
		return Config{}, err
	}
	if cfg.RegisterBurst, err = getInt("REGISTER_BURST", 5); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}
