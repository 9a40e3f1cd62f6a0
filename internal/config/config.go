package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/okanda/wordbook/internal/history"
	"github.com/okanda/wordbook/internal/view"
)

// DefaultBaseURL is the English endpoint of the free dictionary API.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	History    HistoryConfig    `mapstructure:"history"`
	Audio      AudioConfig      `mapstructure:"audio"`
	UI         UIConfig         `mapstructure:"ui"`
}

type DictionaryConfig struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"min=0"`
}

type HistoryConfig struct {
	File     string `mapstructure:"file" validate:"required"`
	Capacity int    `mapstructure:"capacity" validate:"required,min=1"`
}

type AudioConfig struct {
	// PlayerCommand is an external command that accepts a clip URL as its
	// final argument, e.g. "mpv --no-video". Empty disables playback.
	PlayerCommand string `mapstructure:"player_command"`
}

type UIConfig struct {
	Suggestions []string `mapstructure:"suggestions" validate:"max=8,dive,required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	v.SetDefault("dictionary.base_url", DefaultBaseURL)
	v.SetDefault("dictionary.request_timeout", 10*time.Second)
	v.SetDefault("history.file", defaultHistoryFile())
	v.SetDefault("history.capacity", history.DefaultCapacity)
	v.SetDefault("ui.suggestions", view.DefaultSuggestions)

	// The player command comes from the environment only, not the config file
	if err := v.BindEnv("audio.player_command", "WORDBOOK_PLAYER"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBOOK_PLAYER environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wordbook-history.json"
	}
	return filepath.Join(home, ".local", "share", "wordbook", "history.json")
}
