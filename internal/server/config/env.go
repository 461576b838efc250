package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAddress         = "BLOG_ADDRESS"
	EnvDatabaseDSN     = "BLOG_DATABASE_DSN"
	EnvSecretKey       = "BLOG_SECRET_KEY"
	EnvBcryptCost      = "BLOG_BCRYPT_COST"
	EnvLogFormat       = "BLOG_LOG_FORMAT"
	EnvShutdownTimeout = "BLOG_SHUTDOWN_TIMEOUT"
	EnvEnvFile         = "BLOG_ENV_FILE"
)

// parseEnv overlays environment variables onto config. Variables missing from
// the environment are looked up in config.EnvFile (or BLOG_ENV_FILE), if that
// file exists; the real environment always wins.
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEnvFile); ok {
		config.EnvFile = v
	}

	dotenv, err := readDotEnv(config.EnvFile)
	if err != nil {
		return err
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := get(EnvAddress); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := get(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := get(EnvSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := get(EnvLogFormat); ok {
		config.LogFormat = v
	}
	if v, ok := get(EnvBcryptCost); ok {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBcryptCost, err)
		}
		config.BcryptCost = cost
	}
	if v, ok := get(EnvShutdownTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShutdownTimeout, err)
		}
		config.ShutdownTimeout = d
	}
	return nil
}

func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}
