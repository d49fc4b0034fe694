package config_test

import (
	"testing"

	"cardstock/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "EUR", cfg.Server.Currency)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "snapshots", cfg.Storage.Bucket)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "exports/stock.csv", cfg.Inventory.SnapshotObject)
	assert.Equal(t, 30, cfg.Invoice.TimeoutSeconds)
	assert.NotZero(t, cfg.Prices.IntervalMinutes)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "mysql")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
