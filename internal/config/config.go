package config

import (
	"errors"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerroom-server/internal/util"
)

// Config provides configuration for the poker room
type Config struct {
	loaded bool
	Host   string `yaml:"host"`
	Log    struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Table struct {
		DefaultBigBlind   int `yaml:"defaultBigBlind" envconfig:"default_big_blind"`
		DefaultMaxPlayers int `yaml:"defaultMaxPlayers" envconfig:"default_max_players"`
		// ActionTimeout is in seconds, zero disables it
		ActionTimeout int `yaml:"actionTimeout" envconfig:"action_timeout"`
		// StartGameDelay is in seconds, zero requires a player to start each hand
		StartGameDelay int `yaml:"startGameDelay" envconfig:"start_game_delay"`
		// ShuffleSeed makes every deal repeatable, zero uses a crypto-backed shuffle
		ShuffleSeed int64 `yaml:"shuffleSeed" envconfig:"shuffle_seed"`
	} `yaml:"table"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Host = ":5000"
	cfg.Log.Level = "info"
	cfg.Table.DefaultBigBlind = 10
	cfg.Table.DefaultMaxPlayers = 8
	cfg.Table.ActionTimeout = 60
	cfg.Table.StartGameDelay = 10
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// ActionTimeout returns the table's action timeout as a duration
func (c Config) ActionTimeout() time.Duration {
	return time.Second * time.Duration(c.Table.ActionTimeout)
}

// StartGameDelay returns the pause between hands as a duration
func (c Config) StartGameDelay() time.Duration {
	return time.Second * time.Duration(c.Table.StartGameDelay)
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional, the environment overrides anything it sets.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PRS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("prs", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
