// bundlefx/bundlefx.go
package bundlefx

import (
	"go.uber.org/fx"

	"github.com/colinhacks/trpc-1/pkg/middleware/auth"
	"github.com/colinhacks/trpc-1/pkg/middleware/logger"
	"github.com/colinhacks/trpc-1/pkg/middleware/metrics"
)

// Module provided to fx
var Module = fx.Options(
	auth.Module,
	logger.Module,
	metrics.Module,
)
