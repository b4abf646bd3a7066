package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-server/internal/util"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded bool
	Game   struct {
		StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
		Ante            int `yaml:"ante"`
		BetStep         int `yaml:"betStep" envconfig:"bet_step"`
	} `yaml:"game"`
	Room struct {
		MaxSessions int `yaml:"maxSessions" envconfig:"max_sessions"`
	} `yaml:"room"`
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var c Config
	c.Game.StartingBalance = 1000
	c.Game.Ante = 20
	c.Game.BetStep = 10
	c.Room.MaxSessions = 1000
	c.Log.Level = "info"

	return c
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
// Values come from the defaults, then the config file if it exists, then the environment
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("holdem", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
