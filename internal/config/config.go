/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package config loads service configuration for the teetimes binaries.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mikeb26/teetimes/internal"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Discord   DiscordConfig   `mapstructure:"discord"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// MaxUploadBytes bounds roster uploads.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CacheConfig struct {
	// Bucket is the S3 bucket of the web cache; empty keeps it in memory.
	Bucket string `mapstructure:"bucket"`
}

type EphemerisConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	DefaultArea string `mapstructure:"default_area"`
}

type DiscordConfig struct {
	Token     string `mapstructure:"token"`
	AppID     string `mapstructure:"app_id"`
	PublicKey string `mapstructure:"public_key"`
	Port      int    `mapstructure:"port"`
}

// Load reads configuration from defaults, then the optional file at path
// (or config.yaml in ./config and . when path is empty), then TEETIMES_*
// environment variables, later sources winning.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_upload_bytes", 8<<20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("cache.bucket", "")

	v.SetDefault("ephemeris.base_url", internal.EphemerisBaseURL)
	v.SetDefault("ephemeris.default_area", "RM")

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.app_id", "")
	v.SetDefault("discord.public_key", "")
	v.SetDefault("discord.port", 8081)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(internal.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.Load: failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be within 1-65535, got %d",
			c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: server.max_upload_bytes must be positive")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format must be json or console, got %q",
			c.Log.Format)
	}
	return nil
}

// DiscordReady reports whether the bot credentials are all present.
func (c *Config) DiscordReady() error {
	var missing []string
	if c.Discord.Token == "" {
		missing = append(missing, "discord.token")
	}
	if c.Discord.AppID == "" {
		missing = append(missing, "discord.app_id")
	}
	if c.Discord.PublicKey == "" {
		missing = append(missing, "discord.public_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing %v", strings.Join(missing, ", "))
	}
	return nil
}
