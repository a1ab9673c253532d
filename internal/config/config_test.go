package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"TASKLIST_ADDR", "TASKLIST_THEME", "TASKLIST_COLOR", "TASKLIST_LOG_LEVEL", "TASKLIST_LOG_FORMAT", "TASKLIST_LOG_FILE", "TASKLIST_SEED"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.Seed)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("TASKLIST_ADDR", ":9000")
	t.Setenv("TASKLIST_THEME", " neon ")
	t.Setenv("TASKLIST_SEED", "todos.json")

	cfg := FromEnv()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "todos.json", cfg.Seed)
}
