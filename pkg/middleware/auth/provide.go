package auth

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

// ProvideAuthentication wires defaults and env config.
func ProvideAuthentication() *Middleware {
	leeway := 60 * time.Second
	if v := strings.TrimSpace(os.Getenv("AUTH_LEEWAY_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			leeway = time.Duration(n) * time.Second
		}
	}

	return &Middleware{
		secret:    []byte(os.Getenv("AUTH_JWT_SECRET")),
		adminRole: os.Getenv("ADMIN_ROLE_NAME"),
		devBypass: os.Getenv("AUTH_DEV_BYPASS") == "true",
		leeway:    leeway,
	}
}

var Module = fx.Options(
	fx.Provide(ProvideAuthentication),
)
