package logger

import (
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/colinhacks/trpc-1/pkg/procedure"
	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

type Middleware struct{}

// Calls logs one line per procedure call: path, call type, request id,
// outcome code and latency. It never alters the chain's result.
func (m *Middleware) Calls() procedure.Middleware {
	return func(p procedure.Params) procedure.Result {
		l := callLogger
		start := time.Now()

		res := p.Next()

		code := ""
		if err := res.Err(); err != nil {
			code = string(err.Code)
		} else if !res.Succeeded() {
			code = string(rpcerr.CodeInternal)
		}

		l.Info("",
			zap.String("dateTime", start.UTC().Format(time.RFC1123)),
			zap.String("requestId", chimd.GetReqID(p.Ctx)),
			zap.String("path", p.Path),
			zap.String("callType", string(p.Type)),
			zap.String("code", code),
			zap.Bool("ok", res.Succeeded()),
			zap.Duration("lat", time.Since(start)),
		)
		return res
	}
}
