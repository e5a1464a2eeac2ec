package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "city-router.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[data]
coordinates = "data/coords.txt"
adjacencies = "data/adj.txt"
directed = true

[output]
separator = " > "
color = false
geojson = "route.geojson"

[search]
snap_radius = 0.25
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data/coords.txt", cfg.Data.Coordinates)
	assert.Equal(t, "data/adj.txt", cfg.Data.Adjacencies)
	assert.True(t, cfg.Data.Directed)
	assert.Equal(t, " > ", cfg.Output.Separator)
	assert.False(t, cfg.Output.ColorEnabled())
	assert.Equal(t, "route.geojson", cfg.Output.GeoJSON)
	assert.Equal(t, 0.25, cfg.Search.SnapRadius)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "[search]\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "coordinates.txt", cfg.Data.Coordinates)
	assert.Equal(t, "Adjacencies.txt", cfg.Data.Adjacencies)
	assert.False(t, cfg.Data.Directed)
	assert.Equal(t, " -> ", cfg.Output.Separator)
	assert.True(t, cfg.Output.ColorEnabled())
}

func TestLoadConfigExample(t *testing.T) {
	cfg, err := LoadConfig("city-router.example.toml")
	require.NoError(t, err)
	assert.Equal(t, "coordinates.txt", cfg.Data.Coordinates)
	assert.True(t, cfg.Output.ColorEnabled())
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[search]\nsnap_radius = -1\n"))
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidConfig))
	assert.Contains(t, err.Error(), "search.snapradius must be at least 0")
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[data\ncoordinates = "))
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidConfig))
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestConfigValidateRequired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Coordinates = ""
	cfg.Output.Separator = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.coordinates is required")
	assert.Contains(t, err.Error(), "output.separator is required")
}
