package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Game    GameConfig    `mapstructure:"game"`
	Audio   AudioConfig   `mapstructure:"audio"`
}

// StorageConfig holds local persistence configuration
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig holds gameplay tunables
type GameConfig struct {
	DailyXPGoal int `mapstructure:"daily_xp_goal"`
}

// AudioConfig holds pronunciation CDN configuration
type AudioConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	CacheDir       string `mapstructure:"cache_dir"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the audio fetch timeout as a duration.
func (a AudioConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	home, _ := os.UserHomeDir()

	viper.SetDefault("storage.path", filepath.Join(home, ".mandarin-master", "progress.db"))

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("game.daily_xp_goal", 50)

	viper.SetDefault("audio.base_url", "https://raw.githubusercontent.com/hugolpz/audio-cmn/master/96k/hsk/")
	viper.SetDefault("audio.cache_dir", filepath.Join(home, ".mandarin-master", "audio"))
	viper.SetDefault("audio.timeout_seconds", 8)
}
