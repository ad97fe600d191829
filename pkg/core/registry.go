// core/registry.go
package core

import "github.com/colinhacks/trpc-1/pkg/procedure"

var registry = map[string]*procedure.Procedure{}

// Register makes a procedure available under a name referenced in
// manifest.toml. Declaration-time wiring; not safe for concurrent use
// with Lookup.
func Register(name string, p *procedure.Procedure) {
	registry[name] = p
}

// Lookup retrieves a registered procedure by name.
func Lookup(name string) (*procedure.Procedure, bool) {
	p, ok := registry[name]
	return p, ok
}
