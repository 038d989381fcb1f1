package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[mainConfig]
appName = "oss"
port = 9000

[storeConfig]
backend = "redis"

[kafkaConfig]
brokers = ["127.0.0.1:9092"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "oss", c.AppName)
	assert.Equal(t, 9000, c.MainConfig.Port)
	assert.Equal(t, "0.0.0.0", c.MainConfig.Host)
	assert.Equal(t, StoreBackendRedis, c.StoreConfig.Backend)
	assert.Equal(t, []string{"127.0.0.1:9092"}, c.KafkaConfig.Brokers)
	assert.Equal(t, defaultContactTopic, c.KafkaConfig.ContactTopic)
	assert.Equal(t, "oss-contact", c.MCPConfig.Name)
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.NotNil(t, c)
	assert.Equal(t, StoreBackendMemory, c.StoreConfig.Backend)
	assert.Equal(t, "mysql", c.DatabaseConfig.Driver)
	assert.Equal(t, 8000, c.MainConfig.Port)
	assert.Equal(t, "info", c.LogConfig.Level)
}
