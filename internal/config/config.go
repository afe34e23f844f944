package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	ServerPort           string
	JWTSecret            string
	UploadsDir           string
	InitialAdminUsername string
	CORSOrigins          []string
	LogLevel             string
	DB                   DBConfig
}

// Load reads an optional .env file and then the environment.
// It returns whether a .env file was found so the caller can log it.
func Load() (*Config, bool, error) {
	envLoaded := godotenv.Load() == nil

	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, envLoaded, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, envLoaded, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		JWTSecret:            jwtSecret,
		UploadsDir:           getEnv("UPLOADS_DIR", "uploads"),
		InitialAdminUsername: os.Getenv("INITIAL_ADMIN_USERNAME"),
		CORSOrigins:          splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DB:                   *dbCfg,
	}
	return cfg, envLoaded, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
