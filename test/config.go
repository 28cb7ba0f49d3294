package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BOARD_DEBUG_HTTP dumps response bodies for failed expectations
	DebugHTTP bool `envconfig:"BOARD_DEBUG_HTTP" default:"false"`
	// BOARD_DISPLAY_TIMEZONE overrides the feed display timezone
	DisplayTimezone string `envconfig:"BOARD_DISPLAY_TIMEZONE" default:"America/New_York"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
