package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	MediaDir       string
	LogFile        string
	TemplatesDir   string
	StaticDir      string
	TemplateReload bool
}

// Load reads the environment, after merging a .env file when one exists.
// Variables already set in the environment win over .env entries.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] could not read .env: %v", err)
	}

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		DBDSN:        getenv("DB_DSN", ":memory:"), // mock catalog lives only for the process
		MediaDir:     getenv("MEDIA_DIR", "./web/media"),
		LogFile:      os.Getenv("LOG_FILE"),
		TemplatesDir: getenv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:    getenv("STATIC_DIR", "./web/static"),
	}
	if v, err := strconv.ParseBool(os.Getenv("TEMPLATE_RELOAD")); err == nil {
		cfg.TemplateReload = v
	}

	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s TEMPLATES_DIR=%s",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.TemplatesDir)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
