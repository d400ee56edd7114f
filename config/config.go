package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CLIENT_URL     string
	WEBHOOK_SECRET string

	// Base URL for generated cafe web stores, e.g. https://cafestores.example.com
	WEB_STORE_BASE_URL string

	RATE_LIMIT_RPS   float64
	RATE_LIMIT_BURST int

	LOG_LEVEL string
	LOG_JSON  bool
	LOG_FILE  string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CLIENT_URL = getEnv("CLIENT_URL", "http://localhost:3000")
	WEBHOOK_SECRET = mustEnv("WEBHOOK_SECRET")

	WEB_STORE_BASE_URL = getEnv("WEB_STORE_BASE_URL", "https://cafestores.example.com")

	RATE_LIMIT_RPS = getEnvFloat("RATE_LIMIT_RPS", 10)
	RATE_LIMIT_BURST = getEnvInt("RATE_LIMIT_BURST", 100)

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_JSON = getEnv("LOG_JSON", "false") == "true"
	LOG_FILE = getEnv("LOG_FILE", "")

	// Google sign-in is optional. Routes stay disabled when unset.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", CLIENT_URL)
}

// GoogleEnabled reports whether Google sign-in is configured.
func GoogleEnabled() bool {
	return GOOGLE_CLIENT_ID != "" && GOOGLE_CLIENT_SECRET != "" && GOOGLE_REDIRECT_URL != ""
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
