// Package config loads framework debug settings from the environment.
//
// All variables share the LATTICE prefix, e.g. LATTICE_VERBOSE=true.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the shared prefix for all framework environment variables.
const envPrefix = "lattice"

// Debug controls diagnostic output of the framework.
type Debug struct {
	// Verbose enables stack traces in the default error handler
	// (LATTICE_VERBOSE).
	Verbose bool `envconfig:"VERBOSE" default:"false"`

	// HierarchyFormat selects the widget hierarchy dump encoding:
	// "text" or "yaml" (LATTICE_HIERARCHY_FORMAT).
	HierarchyFormat string `envconfig:"HIERARCHY_FORMAT" default:"text"`
}

// FromEnv reads debug settings from LATTICE_* environment variables.
// Unset variables keep their defaults.
func FromEnv() (Debug, error) {
	var d Debug
	if err := envconfig.Process(envPrefix, &d); err != nil {
		return Debug{}, err
	}
	return d, nil
}
