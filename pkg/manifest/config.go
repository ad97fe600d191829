package manifest

import (
	"errors"
	"fmt"
)

// Config is the top-level manifest: process-wide runtime switches plus
// the routes the transport exposes.
type Config struct {
	Runtime Runtime `toml:"runtime"`
	Routes  []Route `toml:"route"`
}

// Runtime holds settings applied once at startup, before procedures are
// constructed.
type Runtime struct {
	// SkipOutputValidation disables output parsing on every procedure
	// built after it is applied. Performance/testing escape hatch.
	SkipOutputValidation bool `toml:"skip_output_validation"`
}

// Validate normalizes and checks all routes.
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return errors.New("no routes defined")
	}
	seen := map[string]struct{}{}
	for i := range c.Routes {
		if err := c.Routes[i].normalize(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		if err := c.Routes[i].validate(); err != nil {
			return fmt.Errorf("route %d (%s): %w", i, c.Routes[i].Path, err)
		}
		if _, dup := seen[c.Routes[i].Path]; dup {
			return fmt.Errorf("route %d: duplicate path %q", i, c.Routes[i].Path)
		}
		seen[c.Routes[i].Path] = struct{}{}
	}
	return nil
}
