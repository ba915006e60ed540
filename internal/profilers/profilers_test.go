package profilers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStop(t *testing.T) {
	dir := t.TempDir()
	config := Config{
		HTTPPort:   -1,
		CPUProfile: filepath.Join(dir, "cpu.prof"),
		MemProfile: filepath.Join(dir, "mem.prof"),
	}
	s, err := Start(context.Background(), config)
	require.NoError(t, err)
	require.NoError(t, s.Stop())
	for _, path := range []string{config.CPUProfile, config.MemProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), "profile %q is empty", path)
	}
}

func TestDisabled(t *testing.T) {
	s, err := Start(context.Background(), Config{HTTPPort: -1})
	require.NoError(t, err)
	assert.NoError(t, s.Stop())
}

func TestInvalidPath(t *testing.T) {
	_, err := Start(context.Background(), Config{HTTPPort: -1, CPUProfile: filepath.Join(t.TempDir(), "missing", "cpu.prof")})
	assert.Error(t, err)
}
