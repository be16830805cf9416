package config

import (
	"os"
	"strings"
)

// Config holds all externally supplied settings for the service.
// Values are read from the environment; godotenv loads a local .env
// file in main before Load is called.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	AllowedOrigins []string
	JWTSecret      string
	SendgridAPIKey string
	EmailSender    string
	LogLevel       string
	LogFormat      string
}

// Load builds a Config from environment variables, applying the
// common local dev-server ports for browser clients (Vite on 5173, CRA on 3000).
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "store_management"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    os.Getenv("EMAIL_SENDER"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
