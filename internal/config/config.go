package config

import (
	"log"
	"os"
)

// devSessionSecret keeps the demo profile runnable without any environment.
// Anything deployed for real must set SESSION_SECRET.
const devSessionSecret = "secret_key_for_session"

type Config struct {
	Addr          string
	DBPath        string
	SessionSecret string
}

// Load reads configuration from the environment, falling back to local-dev
// defaults. Callers are expected to have run godotenv.Load() first.
func Load() Config {
	cfg := Config{
		Addr:          getenv("ADDR", ":8080"),
		DBPath:        getenv("JOBPORTAL_DB", "jobportal.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
	if cfg.SessionSecret == "" {
		log.Println("⚠️  SESSION_SECRET not set, using the built-in dev key. Do not deploy like this.")
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
