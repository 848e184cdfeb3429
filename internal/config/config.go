package config

import (
	"errors"
	"fmt"
	"os"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	development environment = "development"
)

type CacheBackend string

const (
	CacheBackendFile     CacheBackend = "file"
	CacheBackendSQLite   CacheBackend = "sqlite"
	CacheBackendPostgres CacheBackend = "postgres"
)

type Config struct {
	discogsToken    string
	discogsUsername string
	sentryDSN       string
	port            string
	dataDir         string
	cacheBackend    CacheBackend
	dBHost          string
	dBUsername      string
	dBPassword      string
	env             environment
}

func (c *Config) DiscogsToken() string {
	return c.discogsToken
}

func (c *Config) DiscogsUsername() string {
	return c.discogsUsername
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) DataDir() string {
	return c.dataDir
}

func (c *Config) CacheBackend() CacheBackend {
	return c.cacheBackend
}

func (c *Config) DBHost() string {
	return c.dBHost
}

func (c *Config) DBUsername() string {
	return c.dBUsername
}

func (c *Config) DBPassword() string {
	return c.dBPassword
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf(
		"Config{env: %s, username: %s, cacheBackend: %s, port: %s, ...}",
		string(c.env), c.discogsUsername, string(c.cacheBackend), c.port,
	)
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("VINYLVAULT_ENVIRONMENT")
	if !ok {
		return missingKey("VINYLVAULT_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "development":
		env = development
	default:
		return Config{}, fmt.Errorf("%w: VINYLVAULT_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
	}

	discogsToken := os.Getenv("DISCOGS_TOKEN")
	discogsUsername := os.Getenv("DISCOGS_USERNAME")
	sentryDSN := os.Getenv("SENTRY_DSN")
	dbHost := os.Getenv("DB_HOST")
	dbUsername := os.Getenv("DB_USERNAME")
	dbPassword := os.Getenv("DB_PASSWORD")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dataDir := os.Getenv("VINYLVAULT_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	var cacheBackend CacheBackend
	switch rawBackend := os.Getenv("CACHE_BACKEND"); rawBackend {
	case "file":
		cacheBackend = CacheBackendFile
	case "sqlite":
		cacheBackend = CacheBackendSQLite
	case "postgres":
		cacheBackend = CacheBackendPostgres
	case "":
		// Self-hosted default; deployments opt in to postgres
		cacheBackend = CacheBackendSQLite
	default:
		return Config{}, fmt.Errorf("%w: CACHE_BACKEND (%s)", ErrInvalidValue, rawBackend)
	}

	if env == production {
		if discogsToken == "" {
			return missingKey("DISCOGS_TOKEN")
		}
		if discogsUsername == "" {
			return missingKey("DISCOGS_USERNAME")
		}
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	if cacheBackend == CacheBackendPostgres {
		if dbHost == "" {
			return missingKey("DB_HOST")
		}
		if dbUsername == "" {
			return missingKey("DB_USERNAME")
		}
		if dbPassword == "" {
			return missingKey("DB_PASSWORD")
		}
	}

	return Config{
		discogsToken:    discogsToken,
		discogsUsername: discogsUsername,
		sentryDSN:       sentryDSN,
		port:            port,
		dataDir:         dataDir,
		cacheBackend:    cacheBackend,
		dBHost:          dbHost,
		dBUsername:      dbUsername,
		dBPassword:      dbPassword,
		env:             env,
	}, nil
}
