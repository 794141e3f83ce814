// Package envconfig provides configuration structs for configuring
// environments. Environment configurations in this package are JSON
// and YAML serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/zonelearn/environment"
	"github.com/samuelfneumann/zonelearn/environment/dimmer"
	"github.com/samuelfneumann/zonelearn/environment/lab"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Lab    EnvName = "Lab"
	Dimmer EnvName = "Dimmer"
)

// Config implements a specific configuration of an environment. Fields
// that do not apply to the named environment are ignored:
//
//	Environment		Fields
//	Lab				Sunshine, Drift
//	Dimmer			StartZ1, StartZ2
type Config struct {
	Environment EnvName `json:"environment" yaml:"environment" mapstructure:"environment"`
	Sunshine    int     `json:"sunshine" yaml:"sunshine" mapstructure:"sunshine"`
	Drift       float64 `json:"drift" yaml:"drift" mapstructure:"drift"`
	StartZ1     int     `json:"start_z1" yaml:"start_z1" mapstructure:"start_z1"`
	StartZ2     int     `json:"start_z2" yaml:"start_z2" mapstructure:"start_z2"`
}

// Default returns the default environment Config: a lab with medium
// sunshine that never changes
func Default() Config {
	return Config{
		Environment: Lab,
		Sunshine:    2,
	}
}

// Create returns the environment described by the Config
func (c Config) Create(seed uint64) (env.Environment, error) {
	switch c.Environment {
	case Lab:
		l, err := lab.New(c.Sunshine, c.Drift, seed)
		if err != nil {
			return nil, fmt.Errorf("create: %w", err)
		}
		return l, nil

	case Dimmer:
		d, err := dimmer.New(c.StartZ1, c.StartZ2)
		if err != nil {
			return nil, fmt.Errorf("create: %w", err)
		}
		return d, nil
	}

	return nil, fmt.Errorf("create: cannot create environment %q, no such "+
		"environment", c.Environment)
}
