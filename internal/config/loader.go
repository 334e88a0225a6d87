package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load builds the configuration: defaults, then an optional YAML file,
// then environment variables. cfgFile may be empty.
//
// Environment variables use the FOLIO_ prefix with underscores for nesting
// (e.g. FOLIO_SERVER_PORT, FOLIO_RATELIMIT_MAX). Provider credentials are
// additionally bound under their conventional names: ANTHROPIC_API_KEY,
// RESEND_API_KEY, GITHUB_TOKEN.
func Load(cfgFile string) (*Config, error) {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("assist.api_key", "FOLIO_ASSIST_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("mail.api_key", "FOLIO_MAIL_API_KEY", "RESEND_API_KEY")
	_ = v.BindEnv("showcase.token", "FOLIO_SHOWCASE_TOKEN", "GITHUB_TOKEN")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")

	v.SetDefault("ratelimit.max", 3)
	v.SetDefault("ratelimit.window", time.Hour)
	v.SetDefault("ratelimit.sweep_threshold", 1000)

	v.SetDefault("assist.model", "claude-sonnet-4-20250514")
	v.SetDefault("assist.max_tokens", 1024)

	v.SetDefault("mail.from", "Portfolio Contact <onboarding@resend.dev>")
	v.SetDefault("mail.to", "danderson.at.huckabee@gmail.com")

	v.SetDefault("showcase.username", "d4vid4nderson")
	v.SetDefault("showcase.cache_ttl", time.Hour)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("ratelimit max must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit window must be positive")
	}
	if c.Assist.MaxTokens <= 0 {
		return fmt.Errorf("assist max_tokens must be positive")
	}
	if strings.TrimSpace(c.Mail.From) == "" || strings.TrimSpace(c.Mail.To) == "" {
		return fmt.Errorf("mail from and to addresses must be set")
	}
	return nil
}
