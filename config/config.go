// Package config loads client configuration for the QAI SDK.
// Configuration can come from a YAML file and environment variables. This
// is a convenience for callers; the signing core itself never reads
// credentials from the environment or disk.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shaoqingyang/qingcloud-sdk-go/signature"
)

// Config represents the complete client configuration.
type Config struct {
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Endpoint    EndpointConfig    `mapstructure:"endpoint"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// CredentialsConfig holds the access key pair and zone.
type CredentialsConfig struct {
	AccessKeyID string `mapstructure:"access_key_id"`
	SecretKey   string `mapstructure:"secret_key"`
	Zone        string `mapstructure:"zone"`
}

// Credentials returns the pair in the form the signature package takes.
func (c CredentialsConfig) Credentials() signature.Credentials {
	return signature.Credentials{
		AccessKeyID: c.AccessKeyID,
		SecretKey:   c.SecretKey,
	}
}

// EndpointConfig holds the API endpoint settings.
type EndpointConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Protocol string        `mapstructure:"protocol"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the specified file and environment
// variables. Environment variables take precedence over file values and
// are prefixed with QAI_ using _ as separator (e.g. QAI_CREDENTIALS_ZONE).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("QAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.qai")
	}

	// A missing config file is acceptable; env vars can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint.host", "ai.coreshub.cn")
	v.SetDefault("endpoint.port", 443)
	v.SetDefault("endpoint.protocol", "https")
	v.SetDefault("endpoint.timeout", 5*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Validate checks the configuration for required values and valid ranges.
func (c *Config) Validate() error {
	if c.Credentials.AccessKeyID == "" {
		return fmt.Errorf("credentials.access_key_id is required")
	}
	if c.Credentials.SecretKey == "" {
		return fmt.Errorf("credentials.secret_key is required")
	}
	if c.Credentials.Zone == "" {
		return fmt.Errorf("credentials.zone is required")
	}

	if c.Endpoint.Port < 1 || c.Endpoint.Port > 65535 {
		return fmt.Errorf("endpoint.port must be between 1 and 65535")
	}
	if c.Endpoint.Protocol != "http" && c.Endpoint.Protocol != "https" {
		return fmt.Errorf("endpoint.protocol must be 'http' or 'https'")
	}

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of: trace, debug, info, warn, error, fatal, panic")
	}

	return nil
}

// MustLoad loads configuration or panics on error.
// Useful for main function initialization.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
