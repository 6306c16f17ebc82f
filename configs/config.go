package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// MustConfig is for values the process cannot run without, e.g. the JWT
// signing secret. Called once at startup so a missing value fails fast
// instead of surfacing as a 500 on the first request.
func MustConfig(key string) string {
	value := Config(key)
	if value == "" {
		log.Fatalf("🔥 Required configuration %s is not set", key)
	}
	return value
}
