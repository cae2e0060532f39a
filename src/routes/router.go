package routes

import (
	"github.com/ARQAP/quanti-backend/src/i18n"
	"github.com/ARQAP/quanti-backend/src/logging"
	"github.com/ARQAP/quanti-backend/src/metrics"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// Dependencies are the services the router exposes
type Dependencies struct {
	DB             *gorm.DB
	Translator     *i18n.Translator
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	ServiceName    string

	Users         *services.UserService
	Quants        *services.QuantService
	Assays        *services.AssayService
	Standards     *services.StandardService
	StandardTypes *services.StandardTypeService
	QuantTypes    *services.QuantTypeService
	Inputs        *services.InputService
	Imports       *services.ImportService
	Lookups       *services.LookupService
}

// NewRouter builds the gin engine with its middleware chain and every route
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		logging.Recoverer(),
		otelgin.Middleware(deps.ServiceName),
		logging.LoggerMiddleware(),
		middleware.SetupCORS(deps.AllowedOrigins),
		middleware.Locale(deps.Translator),
	)

	SetupSystemRoutes(router, deps.DB, deps.Metrics)
	SetupUserRoutes(router, deps.Users)
	SetupQuantRoutes(router, deps.Quants, deps.QuantTypes, deps.Translator)
	SetupAssayRoutes(router, deps.Assays)
	SetupStandardRoutes(router, deps.Standards)
	SetupStandardTypeRoutes(router, deps.StandardTypes)
	SetupQuantTypeRoutes(router, deps.QuantTypes)
	SetupInputRoutes(router, deps.Inputs)
	SetupImportRoutes(router, deps.Imports)
	SetupLookupRoutes(router, deps.Lookups)

	return router
}
