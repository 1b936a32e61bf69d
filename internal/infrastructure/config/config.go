package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr       string `mapstructure:"addr"`
	MinimumAge int    `mapstructure:"minimum_age"`
	LogDev     bool   `mapstructure:"log_development"`
}

// Load reads .env (if any), an optional config file named by
// USER_API_CONFIG, then USER_API_* environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("minimum_age", 18)
	v.SetDefault("log_development", false)

	v.SetEnvPrefix("USER_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("USER_API_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.MinimumAge < 0 {
		return Config{}, errors.New("minimum_age must not be negative")
	}
	return cfg, nil
}
