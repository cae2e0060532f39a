package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/i18n"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

// SetupQuantRoutes registers the quant API and the quant form pages.
// Operators identify themselves with their swipecard, so none of these need a token.
func SetupQuantRoutes(router *gin.Engine, service *services.QuantService, quantTypes *services.QuantTypeService, translator *i18n.Translator) {
	quantController := controllers.NewQuantController(service, quantTypes, translator)

	quant := router.Group("/quants")
	{
		quant.GET("", quantController.GetAllQuants)
		quant.POST("", quantController.CreateQuant)
		quant.GET("/summary", quantController.GetQuantSummaries)
		quant.GET("/new", quantController.NewQuantForm)
		quant.POST("/form", quantController.SubmitQuantForm)
		quant.GET("/:id", quantController.GetQuantByID)
	}
}
