package manifest

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Route maps an HTTP path to a registered procedure.
type Route struct {
	Path      string   `toml:"path"`
	Procedure string   `toml:"procedure"`
	Type      string   `toml:"type"` // "query" | "mutation" | "subscription"
	Guard     Guard    `toml:"guard"`
	Policy    Policy   `toml:"policy"`
	Tags      []string `toml:"tags"`
}

type Guard struct {
	Roles       []string `toml:"roles"`
	Users       []string `toml:"users"`
	RequireAuth bool     `toml:"require_auth"`
}

type Policy struct {
	TimeoutMS int `toml:"timeout_ms"`
}

// normalize path/type
func (r *Route) normalize() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(r.Path, "/") {
		r.Path = "/" + r.Path
	}
	if r.Path != "/" {
		r.Path = path.Clean(r.Path)
	}
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	if r.Type == "" {
		r.Type = "query"
	}
	r.Procedure = strings.TrimSpace(r.Procedure)
	return nil
}

// validate fields that are independent of global state.
func (r *Route) validate() error {
	if r.Procedure == "" {
		return errors.New("procedure name required")
	}
	switch r.Type {
	case "query", "mutation", "subscription":
	default:
		return fmt.Errorf("unknown call type %q", r.Type)
	}
	if r.Policy.TimeoutMS < 0 {
		return errors.New("policy.timeout_ms must be >= 0")
	}
	return nil
}
