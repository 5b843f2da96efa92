package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buransh.toml")

	err := os.WriteFile(path, []byte(`
title = "Custom"
width = 800
height = 600
`), 0o644)
	require.NoError(t, err)

	opts, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Options{Title: "Custom", Width: 800, Height: 600}, opts)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	opts, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestLoadConfigRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buransh.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = [`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestOptionsDefaulting(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, Options{Title: "Buransh test", Width: 512, Height: 512}, opts)

	// explicit values win
	opts = Options{Title: "Custom", Width: 800, Height: 600}.withDefaults()
	assert.Equal(t, Options{Title: "Custom", Width: 800, Height: 600}, opts)

	// negative sizes fall back too
	opts = Options{Width: -1, Height: -1}.withDefaults()
	assert.Equal(t, 512, opts.Width)
	assert.Equal(t, 512, opts.Height)
}
