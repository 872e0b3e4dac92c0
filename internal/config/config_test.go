package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sportshub/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	cfg := config.Load()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "sportshub", cfg.Database.Name)
	assert.False(t, cfg.DatabaseURLSet())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "hub-test")

	cfg := config.Load()

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "hub-test", cfg.Database.Name)
	assert.True(t, cfg.DatabaseURLSet())
}

func TestLoadIgnoresUnparsablePort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 8000, cfg.Server.Port)
}
