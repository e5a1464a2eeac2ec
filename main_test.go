package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureArgs = []string{
	"-coordinates", "testdata/coordinates.txt",
	"-adjacencies", "testdata/Adjacencies.txt",
	"-no-color",
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(append(append([]string{}, fixtureArgs...), args...), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunInteractive(t *testing.T) {
	stdout, stderr, err := runCLI(t, "Wichita\nAnthony\nAugusta\n")
	require.NoError(t, err)

	assert.Equal(t,
		"Start: Error: unrecognized city.\nStart: Goal: Anthony -> Harper -> Cheney -> Clearwater -> Derby -> Augusta\n",
		stdout)
	assert.Contains(t, stderr, "graph loaded")
}

func TestRunFlags(t *testing.T) {
	stdout, _, err := runCLI(t, "", "-start", "Kiowa", "-goal", "Clearwater")
	require.NoError(t, err)
	assert.Equal(t, "Kiowa -> Attica -> Harper -> Cheney -> Clearwater\n", stdout)
}

func TestRunNoPath(t *testing.T) {
	stdout, _, err := runCLI(t, "", "-start", "Anthony", "-goal", "Island")
	require.NoError(t, err)
	assert.Equal(t, "No paths found.\n", stdout)
}

func TestRunUnknownFlagLocation(t *testing.T) {
	_, _, err := runCLI(t, "", "-start", "Wichita", "-goal", "Anthony")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeUnknownNode))
}

func TestRunSnapsCoordinates(t *testing.T) {
	stdout, _, err := runCLI(t, "", "-start", "@37.05,-98.45", "-goal", "Attica")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Using Kiowa")
	assert.Contains(t, stdout, "Kiowa -> Attica\n")
}

func TestRunWritesGeoJSON(t *testing.T) {
	dir := t.TempDir()
	routePath := filepath.Join(dir, "route.geojson")
	graphPath := filepath.Join(dir, "graph.geojson")

	_, _, err := runCLI(t, "", "-start", "Anthony", "-goal", "Cheney",
		"-geojson", routePath, "-graph-geojson", graphPath)
	require.NoError(t, err)

	data, err := os.ReadFile(routePath)
	require.NoError(t, err)
	route, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.NotEmpty(t, route.Features)
	assert.Equal(t, "Anthony", route.Features[0].Properties["start"])

	data, err = os.ReadFile(graphPath)
	require.NoError(t, err)
	network, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	// 13 connections and 13 locations
	assert.Len(t, network.Features, 26)
}

func TestRunExplicitConfigMissing(t *testing.T) {
	_, _, err := runCLI(t, "", "-config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestRunConfigFile(t *testing.T) {
	path := writeConfig(t, `
[data]
coordinates = "testdata/coordinates.txt"
adjacencies = "testdata/Adjacencies.txt"

[output]
separator = ", "
color = false
`)
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", path, "-start", "Derby", "-goal", "Augusta"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "Derby, Augusta\n", stdout.String())
}
