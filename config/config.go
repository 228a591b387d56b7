package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the gateway reads from the environment.
type Config struct {
	Port      string
	APIURL    string // base URL of the ShopHub backend, e.g. http://localhost:8081/api
	JWTSecret string // signs the browser-context cookie

	StoreDriver string // memory | file | redis | postgres
	StoreFile   string // path for the file driver
	RedisAddr   string
	PostgresDSN string

	CORSOrigins []string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		APIURL:      getEnv("SHOPHUB_API_URL", "http://localhost:8081/api"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		StoreDriver: getEnv("STORE_DRIVER", "file"),
		StoreFile:   getEnv("STORE_FILE", "storefront-state.json"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		CORSOrigins: []string{getEnv("CORS_ORIGIN", "*")},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.StoreDriver {
	case "memory", "file", "redis":
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required for the postgres store driver")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
