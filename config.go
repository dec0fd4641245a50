package main

import (
	"fmt"
	"os"
)

type Config struct {
	// Server
	Port string

	// Database
	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	// Auth
	JWTSecret string

	// Uploads
	UploadsRoot string

	// Optional admin bootstrap
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		DBHost: getEnv("DB_HOST", ""),
		DBUser: getEnv("DB_USER", ""),
		DBPass: getEnv("DB_PASS", ""),
		DBName: getEnv("DB_NAME", ""),
		DBPort: getEnv("DB_PORT", "5432"),

		JWTSecret: getEnv("JWT_SECRET", "defaultsecret"),

		UploadsRoot: getEnv("UPLOADS_DIR", "uploads"),

		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@eventhub.local"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBHost == "" || c.DBUser == "" || c.DBPass == "" || c.DBName == "" {
		return fmt.Errorf("DATABASE ENV MISSING — check .env file")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
