package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is loaded once at startup and handed to whatever needs it.
type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	DatabaseURL string

	RedisURL      string
	RedisPassword string

	JWTSecret string

	GiantBombAPIKey string

	UseHTTPS    bool
	TLSCertFile string
	TLSKeyFile  string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DatabaseURL:     getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=gamehub sslmode=disable"),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		GiantBombAPIKey: os.Getenv("GIANTBOMB_API_KEY"),
		UseHTTPS:        os.Getenv("USE_HTTPS") == "true",
		TLSCertFile:     os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:      os.Getenv("TLS_KEY_FILE"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
