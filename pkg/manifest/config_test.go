package manifest

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_DecodeAndValidate verifies a full TOML manifest decodes and
// passes validation with normalized fields.
func TestConfig_DecodeAndValidate(t *testing.T) {
	t.Parallel()

	src := `
[runtime]
skip_output_validation = true

[[route]]
path = "greeting/hello"
procedure = "greeting.hello"
type = "Query"
tags = ["public"]

[[route]]
path = "/user/update"
procedure = "user.update"
type = "mutation"
[route.guard]
require_auth = true
roles = ["editor"]
[route.policy]
timeout_ms = 2000
`
	var cfg Config
	require.NoError(t, toml.Unmarshal([]byte(src), &cfg))
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Runtime.SkipOutputValidation)
	require.Len(t, cfg.Routes, 2)

	assert.Equal(t, "/greeting/hello", cfg.Routes[0].Path)
	assert.Equal(t, "query", cfg.Routes[0].Type)

	assert.Equal(t, "/user/update", cfg.Routes[1].Path)
	assert.Equal(t, "mutation", cfg.Routes[1].Type)
	assert.True(t, cfg.Routes[1].Guard.RequireAuth)
	assert.Equal(t, []string{"editor"}, cfg.Routes[1].Guard.Roles)
	assert.Equal(t, 2000, cfg.Routes[1].Policy.TimeoutMS)
}

// TestConfig_TypeDefaultsToQuery verifies an omitted type normalizes to
// query.
func TestConfig_TypeDefaultsToQuery(t *testing.T) {
	t.Parallel()

	cfg := Config{Routes: []Route{{Path: "/a", Procedure: "a"}}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "query", cfg.Routes[0].Type)
}

// TestConfig_Rejections verifies the validation failure cases.
func TestConfig_Rejections(t *testing.T) {
	t.Parallel()

	cases := map[string]Config{
		"no routes":      {},
		"missing path":   {Routes: []Route{{Procedure: "a"}}},
		"missing proc":   {Routes: []Route{{Path: "/a"}}},
		"bad type":       {Routes: []Route{{Path: "/a", Procedure: "a", Type: "stream"}}},
		"negative tmout": {Routes: []Route{{Path: "/a", Procedure: "a", Policy: Policy{TimeoutMS: -1}}}},
		"duplicate path": {Routes: []Route{
			{Path: "a", Procedure: "a"},
			{Path: "/a/", Procedure: "b"},
		}},
	}
	for name, cfg := range cases {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestRoute_PathNormalization verifies leading slash and cleaning.
func TestRoute_PathNormalization(t *testing.T) {
	t.Parallel()

	r := Route{Path: "users//me/", Procedure: "user.me", Type: " QUERY "}
	require.NoError(t, r.normalize())
	assert.Equal(t, "/users/me", r.Path)
	assert.Equal(t, "query", r.Type)
}
