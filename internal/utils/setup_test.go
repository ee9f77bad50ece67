package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.FancyScreen = true
	cfg.LogLevel = "warn"
	cfg.Explorer.Profile = "shiny"
	cfg.Explorer.CatalogLimit = 151

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"explorer": {"profile": "compact"}}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.ListeningAddr)
	assert.Equal(t, 1000, cfg.Explorer.ResolvedProfile().CatalogLimit)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	tests := map[string]string{
		"malformed":     `{"http": `,
		"bad port":      `{"http": {"port": 70000, "listening_addr": "0.0.0.0"}}`,
		"bad profile":   `{"explorer": {"profile": "retro"}}`,
		"bad base url":  `{"explorer": {"profile": "classic", "base_url": "not a url"}}`,
		"huge limit":    `{"explorer": {"profile": "classic", "catalog_limit": 50000}}`,
		"empty address": `{"http": {"port": 8080, "listening_addr": ""}}`,
		"bad log level": `{"log_level": "verbose", "explorer": {"profile": "classic"}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.NotErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestResolvedProfile(t *testing.T) {
	p := models.ExplorerConfig{Profile: "classic"}.ResolvedProfile()
	assert.Equal(t, 100, p.CatalogLimit)

	p = models.ExplorerConfig{Profile: "classic", CatalogLimit: 151}.ResolvedProfile()
	assert.Equal(t, 151, p.CatalogLimit)

	p = models.ExplorerConfig{Profile: "unknown"}.ResolvedProfile()
	assert.Equal(t, models.DefaultProfile, p.Name)
}
