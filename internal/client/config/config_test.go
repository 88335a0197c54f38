package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"compintel"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoad_Defaults(t *testing.T) {
	withArgs(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, "compintel.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoad_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://api.example.com/v1",
		"request_timeout": "10s"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "compintel.db", cfg.DatabasePath, "fields absent from JSON keep their defaults")
}

func TestLoad_JSONFileMissing(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_EnvOverlay(t *testing.T) {
	withArgs(t)
	t.Setenv("COMPINTEL_API_BASE_URL", "https://env.example.com/api")
	t.Setenv("COMPINTEL_DATABASE_PATH", "/tmp/ci.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/ci.db", cfg.DatabasePath)
}

func TestLoad_FlagsWinOverEnv(t *testing.T) {
	withArgs(t, "-a", "https://flag.example.com/api", "-t", "5")
	t.Setenv("COMPINTEL_API_BASE_URL", "https://env.example.com/api")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
