package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, read once at startup.
type Config struct {
	Port        string
	Environment string
	LogLevel    string
	UploadDir   string
	PublicURL   string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		PublicURL:   getEnv("PUBLIC_URL", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
