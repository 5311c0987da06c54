package config

import (
	"fmt"
	"time"
)

// ConsoleConfig is the configuration of the command-line console. Command
// line flags belong to the console's own command tree, so only environment
// variables, the JSON file and defaults are consulted.
type ConsoleConfig struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// RequestTimeout bounds every request sent to the server.
	RequestTimeout time.Duration
	// Token is the operator JWT, empty before login.
	Token string
}

// GetConsoleConfig builds and validates the console configuration.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
	}

	return consoleCfg, consoleCfg.validate()
}
