package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// AppBaseURL is the externally visible base URL of the app.
	AppBaseURL string
	// SessionSecret signs the flash-message cookie session.
	SessionSecret string
	// SessionBackend selects where the dashboard session slot lives:
	// "memory" or "file".
	SessionBackend string
	// StateDir is the directory the file session backend writes to.
	StateDir string
}

// New loads configuration from environment variables, with a .env file
// as a development convenience.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:           getenv("ADDR", ":8080"),
		AppBaseURL:     getenv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionBackend: getenv("SESSION_BACKEND", "memory"),
		StateDir:       getenv("STATE_DIR", "./data"),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}
	if cfg.SessionBackend != "memory" && cfg.SessionBackend != "file" {
		log.Fatalf("SESSION_BACKEND must be \"memory\" or \"file\", got %q", cfg.SessionBackend)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
