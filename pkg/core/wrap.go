// core/wrap.go
package core

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/colinhacks/trpc-1/pkg/manifest"
	"github.com/colinhacks/trpc-1/pkg/procedure"
	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

type resultEnvelope struct {
	Result struct {
		Data any `json:"data"`
	} `json:"result"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func wrapRoute(rt manifest.Route, d BuildDeps) http.HandlerFunc {
	base, ok := Lookup(rt.Procedure)
	if !ok {
		return func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, rpcerr.New(rpcerr.CodeInternal, "procedure not found"))
		}
	}

	// Derived once per route, not per request.
	proc := base.Derive(ambient(rt, d)...)
	callType := procedure.CallType(rt.Type)

	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := decodeRawInput(r)
		if err != nil {
			writeError(w, rpcerr.Wrap(rpcerr.CodeBadRequest, "malformed input", err))
			return
		}

		out, err := proc.Call(r.Context(), procedure.CallOptions{
			RawInput: raw,
			Path:     rt.Path,
			Type:     callType,
		})
		if err != nil {
			writeError(w, rpcerr.Coerce(err))
			return
		}
		writeResult(w, out)
	}
}

// decodeRawInput produces the untrusted raw value: the "input" query
// parameter on GET, the JSON body otherwise. Absent input decodes to
// nil so input-less procedures see no input.
func decodeRawInput(r *http.Request) (any, error) {
	var payload []byte
	if r.Method == http.MethodGet {
		if q := r.URL.Query().Get("input"); q != "" {
			payload = []byte(q)
		}
	} else if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		payload = b
	}
	if len(payload) == 0 {
		return nil, nil
	}
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func writeResult(w http.ResponseWriter, data any) {
	var env resultEnvelope
	env.Result.Data = data
	writeJSON(w, env, http.StatusOK)
}

func writeError(w http.ResponseWriter, err error) {
	ce := rpcerr.Coerce(err)
	var env errorEnvelope
	env.Error.Code = string(ce.Code)
	env.Error.Message = ce.Message
	writeJSON(w, env, rpcerr.HTTPStatus(ce.Code))
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
