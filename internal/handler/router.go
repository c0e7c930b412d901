package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Jes6241/parquimetros-api/internal/handler/api"
	"github.com/Jes6241/parquimetros-api/internal/handler/middleware"
	"github.com/Jes6241/parquimetros-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	sessionHandler *api.SessionHandler,
	reportHandler *api.ReportHandler,
	zoneHandler *api.ZoneHandler,
	authHandler *api.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, sessionHandler, reportHandler, zoneHandler, authHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	sessionHandler *api.SessionHandler,
	reportHandler *api.ReportHandler,
	zoneHandler *api.ZoneHandler,
	authHandler *api.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/", serviceBanner)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		parking := apiGroup.Group("/parking")
		{
			// Field-facing endpoints stay open so meters and the checker app
			// work without agent credentials.
			addRoutes(parking, []route{
				{Method: http.MethodPost, Path: "/pay", Handler: sessionHandler.Pay},
				{Method: http.MethodGet, Path: "/verify/:plate", Handler: sessionHandler.Verify},
				{Method: http.MethodPost, Path: "/extend", Handler: sessionHandler.Extend},
				{Method: http.MethodGet, Path: "/zones", Handler: zoneHandler.List},
			})

			agentOnly := parking.Group("")
			agentOnly.Use(authMiddleware.RequireAuth())
			addRoutes(agentOnly, []route{
				{Method: http.MethodGet, Path: "/active", Handler: reportHandler.Active},
				{Method: http.MethodGet, Path: "/expired", Handler: reportHandler.Expired},
				{Method: http.MethodGet, Path: "/history/:plate", Handler: reportHandler.History},
				{Method: http.MethodGet, Path: "/statistics", Handler: reportHandler.Statistics},
				{Method: http.MethodPatch, Path: "/:id/mark-fined", Handler: sessionHandler.MarkFined},
			})
		}
	}
}

// @Summary Service banner
// @Description Service name and available endpoints
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func serviceBanner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"servicio": "API de Parquímetros",
		"version":  "1.0",
		"endpoints": gin.H{
			"pagar":        "POST /api/parking/pay",
			"verificar":    "GET /api/parking/verify/:plate",
			"extender":     "POST /api/parking/extend",
			"zonas":        "GET /api/parking/zones",
			"activos":      "GET /api/parking/active",
			"expirados":    "GET /api/parking/expired",
			"historial":    "GET /api/parking/history/:plate",
			"estadisticas": "GET /api/parking/statistics",
			"multar":       "PATCH /api/parking/:id/mark-fined",
		},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
