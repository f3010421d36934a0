package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigReadsTomlAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	toml := `ServiceHost = "127.0.0.1"
ServicePort = 9090
MinioEndpoint = "localhost:9000"
MinioBucket = "thetis-mrv"
RedisEndpoint = "localhost:6379"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644))
	t.Chdir(dir)
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_ACCESS_KEY", "testkey")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "thetis-mrv", cfg.MinioBucket)
	assert.Equal(t, "localhost:6379", cfg.RedisEndpoint)

	// Переменные окружения сильнее toml
	assert.Equal(t, "minio:9000", cfg.MinioEndpoint)
	assert.Equal(t, "testkey", cfg.MinioAccessKey)
}
