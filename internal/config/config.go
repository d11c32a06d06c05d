package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	BasePath         string
	DatabaseURL      string
	RedisURL         string
	OwlEndpoint      string
	OwlTimeout       time.Duration
	JudgeDebug       bool
	IdentityURL      string
	CategoryCacheTTL time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ROOKERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Rookery API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("base.path", "/api/v3")
	v.SetDefault("owl.endpoint", "http://owl.pidgeonhole.space:3001")
	v.SetDefault("owl.timeout", "30s")
	v.SetDefault("judge.debug", false)
	v.SetDefault("category.cache_ttl", "5m")

	ttl, err := time.ParseDuration(v.GetString("category.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid category cache ttl: %w", err)
	}

	owlTimeout, err := time.ParseDuration(v.GetString("owl.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid owl timeout: %w", err)
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		BasePath:         v.GetString("base.path"),
		DatabaseURL:      v.GetString("database.url"),
		RedisURL:         v.GetString("redis.url"),
		OwlEndpoint:      v.GetString("owl.endpoint"),
		OwlTimeout:       owlTimeout,
		JudgeDebug:       v.GetBool("judge.debug"),
		IdentityURL:      v.GetString("identity.url"),
		CategoryCacheTTL: ttl,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.IdentityURL == "" {
		return Config{}, fmt.Errorf("identity provider url must be provided")
	}

	return cfg, nil
}
