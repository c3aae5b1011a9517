package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"screwyourneighbor-server/internal/util"
)

// Config provides configuration for the Screw Your Neighbor server
type Config struct {
	loaded bool

	// Addr is the listen address
	Addr string `yaml:"addr" envconfig:"addr"`

	// StartingLives is used when startGame does not specify a life count
	StartingLives int `yaml:"startingLives" envconfig:"starting_lives"`

	// ResolutionDelaySeconds is the pause between the end of round broadcasts
	ResolutionDelaySeconds int `yaml:"resolutionDelaySeconds" envconfig:"resolution_delay_seconds"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

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
// The YAML file is optional; environment variables always win
func Load() error {
	config = Config{}

	configFile := util.Getenv("SYN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("syn", &config); err != nil {
		return err
	}

	if config.Addr == "" {
		config.Addr = ":5000"
	}

	if config.StartingLives == 0 {
		config.StartingLives = 3
	}

	if config.ResolutionDelaySeconds == 0 {
		config.ResolutionDelaySeconds = 2
	}

	config.loaded = true
	return nil
}
