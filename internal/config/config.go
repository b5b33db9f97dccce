package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBPath      string
	LogLevel    string
	CORSOrigins []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:        envOr("ADDR", ":8080"),
		DBPath:      envOr("DB_PATH", "file:bookquiz.db"),
		LogLevel:    envOr("LOG_LEVEL", "INFO"),
		CORSOrigins: splitOrigins(envOr("CORS_ORIGINS", "*")),
	}
}

// Validate checks that the configuration is usable before the server starts.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS cannot be empty")
	}
	return nil
}

// splitOrigins parses a comma-separated origin allow-list. The single value "*"
// allows every origin.
func splitOrigins(v string) []string {
	if strings.TrimSpace(v) == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
