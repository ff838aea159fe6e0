// Package config loads runtime settings from the environment
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Tokenzrey/dinosaurus/constants"
)

// Config holds every tunable the process reads at startup
type Config struct {
	// LogPath is where the rotated diagnostic log is written
	LogPath string `env:"DINO_LOG_PATH" envDefault:"dinosaurus.log"`

	// Debug lowers the log level to debug
	Debug bool `env:"DINO_DEBUG" envDefault:"false"`

	// RefreshHz is the display refresh rate driving the frame loop
	RefreshHz int `env:"DINO_REFRESH_HZ" envDefault:"30"`

	// ShadowMapSize is the square shadow depth raster resolution
	ShadowMapSize int `env:"DINO_SHADOW_MAP_SIZE" envDefault:"96"`

	// Character is the roster id selected before the first start
	Character string `env:"DINO_CHARACTER" envDefault:"rex"`

	// Mute disables audio output
	Mute bool `env:"DINO_MUTE" envDefault:"false"`
}

// Load parses the environment and clamps values to their working ranges
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.clamp()
	return cfg, nil
}

func (c *Config) clamp() {
	if c.RefreshHz < constants.MinRefreshHz {
		c.RefreshHz = constants.MinRefreshHz
	}
	if c.RefreshHz > constants.MaxRefreshHz {
		c.RefreshHz = constants.MaxRefreshHz
	}
	if c.ShadowMapSize < constants.MinShadowMapSize {
		c.ShadowMapSize = constants.MinShadowMapSize
	}
	if c.ShadowMapSize > constants.MaxShadowMapSize {
		c.ShadowMapSize = constants.MaxShadowMapSize
	}
}
