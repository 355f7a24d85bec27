// internal/config/config.go
package config

// Environment defaults for flags that users tend to set once per
// machine or per CI pipeline. Flags always win: the parsed Env only
// seeds flag defaults, so anything given on the command line overrides
// the environment.

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds QUADCALC_* environment defaults.
type Env struct {
	Threads      int    `env:"QUADCALC_THREADS" envDefault:"0"`
	Output       string `env:"QUADCALC_OUTPUT" envDefault:"text"`
	Quiet        bool   `env:"QUADCALC_QUIET" envDefault:"false"`
	FailExitCode int    `env:"QUADCALC_FAIL_EXIT_CODE" envDefault:"1"`
}

// FromEnv parses the process environment. Unset variables take the
// defaults above; malformed values are reported, not ignored.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
