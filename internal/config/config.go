// Package config provides the layered application configuration: built-in
// defaults, an optional YAML file, then environment variables.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Assist    AssistConfig    `mapstructure:"assist"`
	Mail      MailConfig      `mapstructure:"mail"`
	Showcase  ShowcaseConfig  `mapstructure:"showcase"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level: debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// RateLimitConfig controls the contact-form limiter.
type RateLimitConfig struct {
	// Max is the number of submissions allowed per client per window.
	Max int `mapstructure:"max"`
	// Window is the fixed-window duration.
	Window time.Duration `mapstructure:"window"`
	// SweepThreshold is the tracked-key count that triggers the inline
	// sweep of expired records.
	SweepThreshold int `mapstructure:"sweep_threshold"`
}

// AssistConfig contains the chat assistant provider settings.
//
// APIKey is read from ANTHROPIC_API_KEY. When empty the chat endpoint
// responds with a configuration error without calling the provider.
type AssistConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// MailConfig contains the email provider settings.
//
// APIKey is read from RESEND_API_KEY. It is deliberately not validated at
// startup; a missing key surfaces as a provider failure on send.
type MailConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	// From is the fixed service sender address.
	From string `mapstructure:"from"`
	// To is the site owner's address.
	To string `mapstructure:"to"`
}

// ShowcaseConfig contains the GitHub project listing settings.
type ShowcaseConfig struct {
	Username string        `mapstructure:"username"`
	Token    string        `mapstructure:"token"`
	BaseURL  string        `mapstructure:"base_url"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}
