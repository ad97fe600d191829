package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

// TestJSONStrict_RoundTrip verifies marshal output decodes back without
// an encoder-added trailing newline.
func TestJSONStrict_RoundTrip(t *testing.T) {
	t.Parallel()

	b, err := JSONStrict.Marshal(sample{Name: "a", N: 2})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"a","n":2}`, string(b))

	var out sample
	require.NoError(t, JSONStrict.Unmarshal(b, &out))
	assert.Equal(t, sample{Name: "a", N: 2}, out)
}

// TestJSONStrict_Rejections verifies unknown fields and trailing
// content fail the decode.
func TestJSONStrict_Rejections(t *testing.T) {
	t.Parallel()

	var out sample
	assert.Error(t, JSONStrict.Unmarshal([]byte(`{"name":"a","extra":1}`), &out))
	assert.Error(t, JSONStrict.Unmarshal([]byte(`{"name":"a"} {"name":"b"}`), &out))
}

// TestRedecode verifies a loosely typed wire value becomes a concrete
// struct, with strictness preserved.
func TestRedecode(t *testing.T) {
	t.Parallel()

	var out sample
	raw := map[string]any{"name": "a", "n": float64(3)}
	require.NoError(t, Redecode(JSONStrict, raw, &out))
	assert.Equal(t, sample{Name: "a", N: 3}, out)

	var bad sample
	assert.Error(t, Redecode(JSONStrict, map[string]any{"nope": true}, &bad))
}
