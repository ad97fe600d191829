// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Codec is the wire encoding used by the typed validators and the HTTP
// transport.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

// JSONStrict rejects unknown fields and trailing content. Strictness is
// what lets typed input validators catch shape mismatches instead of
// silently dropping fields.
var JSONStrict Codec = jsonStrict{}

type jsonStrict struct{}

func (jsonStrict) ContentType() string { return "application/json" }

func (jsonStrict) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder appends a newline; strip it for clean payloads.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (jsonStrict) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return errors.New("json trailing content")
	}
	return nil
}

// Redecode round-trips an already-decoded value into dst through c.
// The transport hands procedures loosely typed values (map[string]any
// from the wire); Redecode is how those become concrete input structs.
func Redecode(c Codec, raw any, dst any) error {
	b, err := c.Marshal(raw)
	if err != nil {
		return fmt.Errorf("re-encode: %w", err)
	}
	return c.Unmarshal(b, dst)
}
