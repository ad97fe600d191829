package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideLoggerMiddleware constructs the HTTP/call logging middleware.
func ProvideLoggerMiddleware() *Middleware { return &Middleware{} }

// ProvideLogger is the general-purpose system logger for the app.
func ProvideLogger() *zap.Logger { return NewLog("system.log") }

var Module = fx.Options(
	fx.Provide(ProvideLoggerMiddleware),
	fx.Provide(ProvideLogger),
)
