// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// identifier representation names accepted by the --ids flag
const (
	// TextIDs keeps identifiers as the raw field text
	TextIDs = "text"

	// NumericIDs folds identifiers into integers (lossy)
	NumericIDs = "numeric"
)

// Config is the root-level settings struct, populated from the
// command line via Viper
type Config struct {
	// the identifier representation, "text" or "numeric"
	IDs string `mapstructure:"ids"`

	// whether optional tags are kept on parsed records
	Tags bool `mapstructure:"tags"`

	// whether the input is GFA1 instead of GFA2
	GFA1 bool `mapstructure:"gfa1"`
}

// New returns a new Config struct populated by Viper settings
// bound from command line arguments
func New() *Config {
	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}

	if c.IDs == "" {
		c.IDs = TextIDs
	}

	return c
}
