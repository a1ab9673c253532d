package config

import (
	"os"
	"strings"
)

// Config captures process level settings. Flags override these.
type Config struct {
	Addr      string
	Theme     string
	Color     string
	LogLevel  string
	LogFormat string
	LogFile   string
	Seed      string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:      env("TASKLIST_ADDR", "127.0.0.1:8080"),
		Theme:     env("TASKLIST_THEME", "classic"),
		Color:     env("TASKLIST_COLOR", "auto"),
		LogLevel:  env("TASKLIST_LOG_LEVEL", "info"),
		LogFormat: env("TASKLIST_LOG_FORMAT", "text"),
		LogFile:   env("TASKLIST_LOG_FILE", ""),
		Seed:      env("TASKLIST_SEED", ""),
	}
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
