// core/load.go
package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/colinhacks/trpc-1/pkg/manifest"
)

// LoadConfig reads, decodes and validates the TOML manifest at path.
// The returned config has normalized routes, ready for BuildRouter.
func LoadConfig(path string) (manifest.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return manifest.Config{}, fmt.Errorf("read manifest: %w", err)
	}

	var cfg manifest.Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return manifest.Config{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return manifest.Config{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return cfg, nil
}
