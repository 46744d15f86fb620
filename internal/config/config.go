package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PETCARE"

	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the application configuration loaded from env files, environment
// variables and command-line flags.
type Config struct {
	AppName   string        `mapstructure:"app_name"`
	LogLevel  string        `mapstructure:"log_level"`
	BaseURL   string        `mapstructure:"base_url"`
	TimeoutMS int64         `mapstructure:"timeout_ms"`
	Timeout   time.Duration `mapstructure:"-"`
	Output    string        `mapstructure:"output"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"base-url":   "base_url",
	"timeout-ms": "timeout_ms",
	"log-level":  "log_level",
	"output":     "output",
}

// RegisterFlags adds the global flags understood by Load to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("base-url", "", "API origin (env PETCARE_BASE_URL)")
	fs.Int64("timeout-ms", 0, "request timeout in milliseconds (env PETCARE_TIMEOUT_MS)")
	fs.String("log-level", "", "debug, info, warn or error (env PETCARE_LOG_LEVEL)")
	fs.StringP("output", "o", "", "output format: json or yaml (env PETCARE_OUTPUT)")
}

// Load reads configuration from environment variables and the optional configs/.env file.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags is Load with flags from fs taking precedence over the environment.
// Only flags registered by RegisterFlags are consulted.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "petcare")
	v.SetDefault("log_level", "warn")
	v.SetDefault("base_url", "https://place.wxtcc.com.cn")
	v.SetDefault("timeout_ms", 30000)
	v.SetDefault("output", OutputJSON)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutMS <= 0 {
		return nil, fmt.Errorf("invalid timeout_ms (must be positive milliseconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base_url %q (must be an absolute http(s) URL)", cfg.BaseURL)
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	switch cfg.Output {
	case OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("invalid output %q (must be json or yaml)", cfg.Output)
	}

	return &cfg, nil
}
