package components

import (
	"github.com/Jes6241/parquimetros-api/internal/handler"
	"github.com/Jes6241/parquimetros-api/internal/handler/api"
	"github.com/Jes6241/parquimetros-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewReportHandler,
		api.NewZoneHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
