package config

import (
	"os"
)

type Config struct {
	Port       string
	Env        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// Gemini question generation
	GeminiAPIKey         string
	GeminiModel          string
	GeminiTimeoutSeconds string // seconds; parsed at startup, falls back to 15
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		Env:        getenv("APP_ENV", "dev"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "trivia_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		GeminiAPIKey:         getenv("GEMINI_API_KEY", ""),
		GeminiModel:          getenv("GEMINI_MODEL", "gemini-2.0-flash-001"),
		GeminiTimeoutSeconds: getenv("GEMINI_TIMEOUT_SECONDS", "15"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
