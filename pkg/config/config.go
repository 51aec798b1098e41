/*
Package config manages the TOML settings file for the autosuggest tool.
*/
package config

import (
	"github.com/charmbracelet/log"
	"github.com/orenagassy/google-autocomplete-scraper/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	HTTP HTTPConfig `toml:"http"`
	CLI  CliConfig  `toml:"cli"`
}

// HTTPConfig has autocomplete endpoint related options.
type HTTPConfig struct {
	BaseURL        string `toml:"base_url"`
	Client         string `toml:"client"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	// MaxDisplay caps how many suggestions are printed, 0 shows all.
	MaxDisplay int `toml:"max_display"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			BaseURL:        "http://suggestqueries.google.com/complete/search",
			Client:         "firefox",
			TimeoutSeconds: 10,
		},
		CLI: CliConfig{
			MaxDisplay: 0,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
// Settings are tuning knobs rather than required state, so any failure
// here degrades to built-in defaults instead of aborting the run.
func InitConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
