package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const AppName = "yolo"

// LoadEnv loads a .env file if one is present. Missing files are fine,
// the process environment already wins.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
}

// Getenv returns the value of key, or fallback when the variable is unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
