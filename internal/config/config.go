// Package config provides configuration loading and validation for dyngate.
// Configuration is read from a YAML file with sane defaults for everything
// except the DNS API token and the credential backend selection.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	// SecretsAWS reads credentials from AWS Secrets Manager.
	SecretsAWS = "aws"
	// SecretsStatic serves a fixed pair from this file.
	SecretsStatic = "static"
)

// Default returns the configuration used when no file is given. Defaults are
// seeded before unmarshalling so an explicit false in the file survives.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			UpdatePath:       "/nic/update",
			FallbackToSource: true,
			RequireUserAgent: false,
		},
		DNS: DNSConfig{
			RecordTTL: 300,
		},
		Secrets: SecretsConfig{
			Provider:   SecretsAWS,
			SecretName: "dyngate/credentials",
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
		},
	}
}

// ResolveConfigPath picks the config file path: the flag value when given,
// otherwise the DYNGATE_CONFIG environment variable, otherwise empty
// (defaults only).
func ResolveConfigPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("DYNGATE_CONFIG"))
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path yields the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes the configuration and checks it for consistency.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}
	if !strings.HasPrefix(cfg.Server.UpdatePath, "/") {
		return errors.New("server.update_path must start with /")
	}

	if cfg.DNS.APIToken == "" {
		cfg.DNS.APIToken = os.Getenv("CLOUDFLARE_API_TOKEN")
	}
	if cfg.DNS.RecordTTL < 60 {
		return errors.New("dns.record_ttl must be at least 60 seconds")
	}

	cfg.Secrets.Provider = strings.ToLower(strings.TrimSpace(cfg.Secrets.Provider))
	switch cfg.Secrets.Provider {
	case SecretsAWS:
		if cfg.Secrets.SecretName == "" {
			return errors.New("secrets.secret_name is required with the aws provider")
		}
	case SecretsStatic:
		if cfg.Secrets.Username == "" || cfg.Secrets.Password == "" {
			return errors.New("secrets.username and secrets.password are required with the static provider")
		}
	default:
		return fmt.Errorf("unknown secrets.provider %q", cfg.Secrets.Provider)
	}

	cfg.Logging.Level = strings.ToUpper(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	switch cfg.Logging.Format {
	case "":
		cfg.Logging.Format = "text"
	case "text", "json", "console":
	default:
		return fmt.Errorf("unknown logging.format %q", cfg.Logging.Format)
	}

	return nil
}
