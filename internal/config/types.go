package config

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// UpdatePath is the protocol route. Defaults to the No-IP
	// convention /nic/update.
	UpdatePath string `yaml:"update_path"`
	// FallbackToSource substitutes the transport-observed client address
	// when the request omits myip. Some clients omit it intentionally.
	FallbackToSource bool `yaml:"fallback_to_source"`
	// RequireUserAgent rejects requests without a User-Agent header with
	// the protocol token "badagent". Off by default.
	RequireUserAgent bool `yaml:"require_user_agent"`
}

// DNSConfig contains DNS backend settings.
type DNSConfig struct {
	// APIToken authenticates against the Cloudflare API. Falls back to
	// the CLOUDFLARE_API_TOKEN environment variable when empty.
	APIToken  string `yaml:"api_token"`
	RecordTTL int    `yaml:"record_ttl"`
}

// SecretsConfig selects and configures the credential backend.
type SecretsConfig struct {
	// Provider is "aws" (Secrets Manager) or "static".
	Provider   string `yaml:"provider"`
	SecretName string `yaml:"secret_name"`
	Region     string `yaml:"region"`
	// Username and Password apply to the static provider only.
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// Format is "text", "json" or "console".
	Format string `yaml:"format"`
}

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DNS     DNSConfig     `yaml:"dns"`
	Secrets SecretsConfig `yaml:"secrets"`
	Logging LoggingConfig `yaml:"logging"`
}
