package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "google", cfg.Provider.Name)
	assert.Equal(t, 5000, cfg.Translation.MaxChunkSize)
	assert.Equal(t, 30*time.Second, cfg.Translation.ChunkTimeout)
	assert.Empty(t, cfg.Translation.AllowedTargets)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, 5.0, cfg.Provider.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.Provider.ProtectMarkup)
	assert.False(t, cfg.Provider.ValidateLanguage)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CIVICLINK_PROVIDER_NAME", "mymemory")
	t.Setenv("CIVICLINK_TRANSLATION_MAX_CHUNK_SIZE", "1200")
	t.Setenv("CIVICLINK_TRANSLATION_CHUNK_TIMEOUT", "5s")
	t.Setenv("CIVICLINK_PROVIDER_MYMEMORY_EMAIL", "ops@example.org")
	t.Setenv("CIVICLINK_LOG_VERBOSE", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mymemory", cfg.Provider.Name)
	assert.Equal(t, 1200, cfg.Translation.MaxChunkSize)
	assert.Equal(t, 5*time.Second, cfg.Translation.ChunkTimeout)
	assert.Equal(t, "ops@example.org", cfg.Provider.MyMemory.Email)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "civiclink.yaml")
	content := `
provider:
  name: amazon
  amazon:
    region: eu-west-1
translation:
  max_chunk_size: 800
  allowed_targets: [es, zh, tl]
server:
  addr: "127.0.0.1:9090"
store:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "amazon", cfg.Provider.Name)
	assert.Equal(t, "eu-west-1", cfg.Provider.Amazon.Region)
	assert.Equal(t, 800, cfg.Translation.MaxChunkSize)
	assert.Equal(t, []string{"es", "zh", "tl"}, cfg.Translation.AllowedTargets)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.False(t, cfg.Store.Enabled)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Provider:    Provider{Name: "google"},
		Translation: Translation{MaxChunkSize: 5000},
	}
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.Provider.Name = ""
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Translation.MaxChunkSize = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Translation.ChunkTimeout = -time.Second
	assert.Error(t, bad.Validate())
}
