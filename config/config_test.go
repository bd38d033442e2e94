/*
File   : cloudy/config/config_test.go
Package: config
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasSaneValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "v1.0.0", cfg.Version)
	assert.True(t, cfg.Color)
	assert.NotEmpty(t, cfg.Prompt)
	assert.NotEmpty(t, cfg.Banner)
}

func TestLoadWithEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Nil(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysOnlyProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cloudy.yaml")
	require.Nil(t, os.WriteFile(path, []byte("prompt: \"cl> \"\ncolor: false\n"), 0o644))

	cfg, err := Load(path)
	require.Nil(t, err)
	assert.Equal(t, "cl> ", cfg.Prompt)
	assert.False(t, cfg.Color)
	assert.Equal(t, Default().Version, cfg.Version, "unspecified fields must keep their default value")
}

func TestLoadMalformedYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cloudy.yaml")
	require.Nil(t, os.WriteFile(path, []byte("prompt: [unterminated"), 0o644))

	_, err := Load(path)
	assert.NotNil(t, err)
}
