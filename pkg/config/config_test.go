package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// Round trip: the written file loads back to the same values.
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestInitConfigLoadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[http]\nbase_url = \"http://localhost:9999/complete\"\nclient = \"test\"\ntimeout_seconds = 3\n\n[cli]\nmax_display = 5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/complete", cfg.HTTP.BaseURL)
	assert.Equal(t, "test", cfg.HTTP.Client)
	assert.Equal(t, 3, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, 5, cfg.CLI.MaxDisplay)
}

func TestInitConfigFallsBackOnBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
