package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"catalog"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "artwork-images", cfg.S3Bucket)
	assert.Equal(t, 15*time.Minute, cfg.PresignExpiry)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", ":9090", "-d", "/var/lib/catalog", "-x", "30")

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "/var/lib/catalog", cfg.DataDir)
	assert.Equal(t, 30*time.Minute, cfg.PresignExpiry)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.json")
	doc := map[string]any{
		"endpoint_addr":  ":7070",
		"s3_bucket":      "images-prod",
		"presign_expiry": "5m",
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o660))

	withArgs(t, "-c", file)

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "images-prod", cfg.S3Bucket)
	assert.Equal(t, 5*time.Minute, cfg.PresignExpiry)
	// untouched fields keep their defaults
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"endpoint_addr": ":7070"}`), 0o660))

	withArgs(t, "-c", file, "-a", ":6060")

	cfg := LoadConfig()
	assert.Equal(t, ":6060", cfg.EndpointAddr)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	withArgs(t)
	t.Setenv("S3_ROOT_USER", "catalog-svc")
	t.Setenv("S3_ROOT_PASSWORD", "env-secret")

	cfg := LoadConfig()

	assert.Equal(t, "catalog-svc", cfg.S3RootUser)
	assert.Equal(t, "env-secret", cfg.S3RootPassword)
}
