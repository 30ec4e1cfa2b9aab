package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/metinatakli/movie-discovery/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "MOVIEFRONT"

// flagKeys maps serve flags to their configuration keys.
var flagKeys = map[string]string{
	"port":                 "port",
	"env":                  "env",
	"otel-collector-url":   "otel_collector_url",
	"tmdb-api-key":         "tmdb.api_key",
	"tmdb-base-url":        "tmdb.base_url",
	"tmdb-language":        "tmdb.language",
	"tmdb-timeout":         "tmdb.timeout",
	"redis-url":            "redis.url",
	"redis-max-open-conns": "redis.max_open_conns",
	"redis-max-idle-conns": "redis.max_idle_conns",
	"redis-max-idle-time":  "redis.max_idle_time",
	"cache-ttl":            "cache.ttl",
	"session-idle-timeout": "session.idle_timeout",
}

// loadConfig merges defaults, the optional config file, MOVIEFRONT_*
// environment variables and explicitly set flags, in increasing priority.
func loadConfig(cmd *cobra.Command, configPath string) (app.Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".movie-discovery"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return app.Config{}, fmt.Errorf("error reading config: %w", err)
		}
	}

	if cmd != nil {
		for flag, key := range flagKeys {
			f := cmd.Flags().Lookup(flag)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return app.Config{}, err
			}
		}
	}

	// TMDB_API_KEY is the name most tooling around TMDB uses.
	if !v.IsSet("tmdb.api_key") || v.GetString("tmdb.api_key") == "" {
		if key := os.Getenv("TMDB_API_KEY"); key != "" {
			v.Set("tmdb.api_key", key)
		}
	}

	var cfg app.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return app.Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)
	v.SetDefault("env", "dev")
	v.SetDefault("otel_collector_url", "")

	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p")
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.timeout", 10*time.Second)

	v.SetDefault("redis.url", "localhost:6379")
	v.SetDefault("redis.max_open_conns", 25)
	v.SetDefault("redis.max_idle_conns", 10)
	v.SetDefault("redis.max_idle_time", 2*time.Minute)

	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("session.idle_timeout", 20*time.Minute)
}
