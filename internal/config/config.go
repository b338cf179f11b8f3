// internal/config/config.go
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the binary reads from the environment.
type Config struct {
	// DataFile is the path of the catalog document. It is passed to the
	// store explicitly; nothing else in the program knows the path.
	DataFile string `envconfig:"BIBLIOTEKA_DATA_FILE" default:"library_data.json"`
	LogLevel string `envconfig:"BIBLIOTEKA_LOG_LEVEL" default:"info"`
}

// New reads config from the environment.
func New() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}
