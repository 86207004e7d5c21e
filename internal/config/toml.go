// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvBackend       = "RUMO_BACKEND"
	EnvDBPath        = "RUMO_DB"
	EnvRedisAddr     = "RUMO_REDIS_ADDR"
	EnvRedisPassword = "RUMO_REDIS_PASSWORD"
	EnvRedisDB       = "RUMO_REDIS_DB"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Store StoreConfig `toml:"store"`
}

// StoreConfig maps storage-related settings.
type StoreConfig struct {
	Backend       *string `toml:"backend"`
	Path          *string `toml:"path"`
	RedisAddr     *string `toml:"redis-addr"`
	RedisPassword *string `toml:"redis-password"`
	RedisDB       *int    `toml:"redis-db"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// LoadEnv loads a dotenv file into the process environment without
// overriding variables that are already set. Missing file is not an error.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides file values with RUMO_* environment variables.
func ApplyEnv(cfg *FileConfig) error {
	setString := func(name string, target **string) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*target = &v
		}
	}
	setString(EnvBackend, &cfg.Store.Backend)
	setString(EnvDBPath, &cfg.Store.Path)
	setString(EnvRedisAddr, &cfg.Store.RedisAddr)
	setString(EnvRedisPassword, &cfg.Store.RedisPassword)
	if v, ok := os.LookupEnv(EnvRedisDB); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRedisDB, err)
		}
		cfg.Store.RedisDB = &n
	}
	return nil
}
