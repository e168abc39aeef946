// Package config loads application configuration from the environment
// and an optional config file.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type PredictorConfig struct {
	UsageURL  string        `mapstructure:"usage_url"`
	BudgetURL string        `mapstructure:"budget_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Predictor PredictorConfig `mapstructure:"predictor"`
}

// Load reads wattwise.yaml if present, then applies WATTWISE_* env
// overrides. A missing config file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("wattwise")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/wattwise")

	v.SetEnvPrefix("WATTWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "wattwise.db")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 720*time.Hour)
	v.SetDefault("predictor.usage_url", "http://localhost:5002")
	v.SetDefault("predictor.budget_url", "http://localhost:5001")
	v.SetDefault("predictor.timeout", 30*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
