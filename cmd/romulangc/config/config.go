/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package config reads the handful of environment toggles the demo CLI
// understands. There's no file-based configuration: this binary exists to
// exercise the compiler, not to be a real toolchain entry point.
package config

import "github.com/caarlos0/env/v6"

// Config holds the demo CLI's environment-derived settings.
type Config struct {
	// Disassemble, when true, prints the compiled chunk's disassembly to
	// stdout instead of just reporting success.
	Disassemble bool `env:"ROMULANGC_DISASSEMBLE" envDefault:"true"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
