package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

type Config struct {
	Port         string
	DBDSN        string
	StoreBackend string // local | remote (client-side persistence variant)
	DataDir      string // local variant document directory
	APIBaseURL   string // remote variant base URL
	LogFile      string
}

func Load() Config {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "3000"),
		DBDSN:        getenv("DB_DSN", "bakery.db"), // sqlite file in project root
		StoreBackend: getenv("STORE_BACKEND", BackendLocal),
		DataDir:      getenv("DATA_DIR", "./data"),
		APIBaseURL:   getenv("API_BASE_URL", "http://localhost:3000/api"),
		LogFile:      getenv("LOG_FILE", "./bakehouse.log"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s STORE_BACKEND=%s DATA_DIR=%s API_BASE_URL=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.StoreBackend, cfg.DataDir, cfg.APIBaseURL, cfg.LogFile)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
