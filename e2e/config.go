package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DESCRIPTION_PATH and E2E_GENRE_PATH point at a real export, the suite is skipped without them
	DescriptionPath string `envconfig:"E2E_DESCRIPTION_PATH"`
	GenrePath       string `envconfig:"E2E_GENRE_PATH"`
	// E2E_DEBUG_JSON dumps every explanation as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
