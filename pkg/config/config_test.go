package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(t.TempDir())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.HttpPort)
	assert.Equal(t, DefaultMnemonic, cfg.Harness.Mnemonic)
	assert.Equal(t, "test", cfg.Harness.Network)
	assert.Empty(t, cfg.Harness.AutomationFile)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
app:
  env: production
  http_port: "9090"
harness:
  network: main
  automation_file: automations/accept.json
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	t.Setenv("HARNESS_MNEMONIC", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "9090", cfg.App.HttpPort)
	assert.Equal(t, "main", cfg.Harness.Network)
	assert.Equal(t, "automations/accept.json", cfg.Harness.AutomationFile)
	assert.Equal(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", cfg.Harness.Mnemonic)
}

func TestLoadBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("app: [unterminated"), 0o600))

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	_, err := Load(v)
	assert.Error(t, err)
}
