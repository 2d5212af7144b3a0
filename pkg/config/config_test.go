package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/journeyplanner/pkg/collaborator"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := `
server:
  listen: ":9090"
collaborators:
  directions:
    url: "http://localhost:5001/directions"
  busArrival:
    url: "http://localhost:5030/arrivals"
    accountKey: "abc"
  timeout: 5s
redis:
  address: "redis:6379"
  database: 2
tracking:
  maxConcurrency: 4
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "http://localhost:5001/directions", cfg.Collaborators.Directions.URL)
	assert.Equal(t, "http://bus_fare:5003/bus-fare", cfg.Collaborators.BusFare.URL)
	assert.Equal(t, 5*time.Second, cfg.Collaborators.Timeout)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, 2, cfg.Redis.Database)
	assert.Equal(t, 4, cfg.Tracking.MaxConcurrency)

	endpoints := cfg.Collaborators.Endpoints()
	assert.Equal(t, "abc", endpoints[collaborator.ServiceBusArrival].Headers["AccountKey"])
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("TRAVIGO_LISTEN", ":7000")
	t.Setenv("TRAVIGO_REDIS_DATABASE", "3")
	t.Setenv("TRAVIGO_COLLABORATOR_TIMEOUT", "250ms")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Listen)
	assert.Equal(t, 3, cfg.Redis.Database)
	assert.Equal(t, 250*time.Millisecond, cfg.Collaborators.Timeout)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("collaborators:\n  emissions:\n    url: \"not a url\"\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv("TRAVIGO_REDIS_DATABASE", "two")
	_, err = Load("")
	assert.Error(t, err)
}
