package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	UploadDir   string
	OverdueDays int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	overdue, err := strconv.Atoi(get("OVERDUE_DAYS", "90"))
	if err != nil || overdue <= 0 {
		overdue = 90
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Europe/Berlin"),
		DBPath:      get("DB_PATH", "chili_tracker.db"),
		UploadDir:   get("UPLOAD_DIR", "uploads"),
		OverdueDays: overdue,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
