package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	settings := Default()
	settings.Engines["hex"] = "hex:depth=3"
	settings.ThinkingDelay = "250ms"
	require.NoError(t, settings.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
	assert.Equal(t, "hex:depth=3", loaded.EngineConfig("hex"))
	assert.Equal(t, "gomoku", loaded.EngineConfig("gomoku"))
	delay, err := loaded.Delay()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, delay)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{engines"), 0o644))
	_, err = LoadFile(malformed)
	assert.ErrorContains(t, err, "failed to parse")

	mismatch := filepath.Join(dir, "mismatch.json")
	require.NoError(t, os.WriteFile(mismatch, []byte(`{"engines": {"hex": "gomoku:depth=1"}}`), 0o644))
	_, err = LoadFile(mismatch)
	assert.ErrorContains(t, err, "given for game \"hex\"")

	badDelay := filepath.Join(dir, "delay.json")
	require.NoError(t, os.WriteFile(badDelay, []byte(`{"thinking_delay": "soon"}`), 0o644))
	_, err = LoadFile(badDelay)
	assert.ErrorContains(t, err, "thinking_delay")
}

func TestLoadFromXDG(t *testing.T) {
	// Reload once the environment variables are restored.
	t.Cleanup(xdg.Reload)
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	// No file: defaults.
	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)

	settings.NoColor = true
	path, err := settings.Save()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configHome, RelativePath), path)

	loaded, err := Load()
	require.NoError(t, err)
	assert.True(t, loaded.NoColor)
}
