package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds preview configuration.
type Config struct {
	Preview PreviewConfig
	Article ArticleConfig
	Log     LogConfig
}

// PreviewConfig holds window settings.
type PreviewConfig struct {
	Width  int
	Height int
	Title  string
}

// ArticleConfig points at the article fixtures to play.
type ArticleConfig struct {
	Path      string
	Keyframes string
	Layout    string
	Script    string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix MOTION_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("preview.width", 960)
	v.SetDefault("preview.height", 540)
	v.SetDefault("preview.title", "motion preview")
	v.SetDefault("article.path", filepath.Join("testdata", "article.yaml"))
	v.SetDefault("article.keyframes", filepath.Join("testdata", "keyframes.yaml"))
	v.SetDefault("article.layout", "desktop")
	v.SetDefault("article.script", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("MOTION_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "motion"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MOTION")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine; an explicit one must exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// SlogLevel maps the configured level name to a slog level. Unknown names
// map to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
