package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
credentials:
  access_key_id: QYACCESSKEYIDEXAMPLE
  secret_key: SECRETACCESSKEYEXAMPLE
  zone: pek3a
endpoint:
  host: ai.example.test
  port: 8443
  timeout: 10s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "QYACCESSKEYIDEXAMPLE", cfg.Credentials.AccessKeyID)
	assert.Equal(t, "pek3a", cfg.Credentials.Zone)
	assert.Equal(t, "ai.example.test", cfg.Endpoint.Host)
	assert.Equal(t, 8443, cfg.Endpoint.Port)
	assert.Equal(t, 10*time.Second, cfg.Endpoint.Timeout)

	// Defaults fill unspecified fields.
	assert.Equal(t, "https", cfg.Endpoint.Protocol)
	assert.Equal(t, "info", cfg.Logging.Level)

	creds := cfg.Credentials.Credentials()
	assert.Equal(t, "QYACCESSKEYIDEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "SECRETACCESSKEYEXAMPLE", creds.SecretKey)
}

func TestLoadMissingCredentials(t *testing.T) {
	path := writeConfigFile(t, `
endpoint:
  host: ai.example.test
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_key_id is required")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Credentials: CredentialsConfig{
				AccessKeyID: "ak",
				SecretKey:   "sk",
				Zone:        "pek3a",
			},
			Endpoint: EndpointConfig{Host: "h", Port: 443, Protocol: "https"},
			Logging:  LoggingConfig{Level: "info"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := base()
		cfg.Endpoint.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad protocol", func(t *testing.T) {
		cfg := base()
		cfg.Endpoint.Protocol = "ftp"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := base()
		cfg.Logging.Level = "loud"
		assert.Error(t, cfg.Validate())
	})
}
