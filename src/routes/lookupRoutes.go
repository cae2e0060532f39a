package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLookupRoutes(router *gin.Engine, service *services.LookupService) {
	lookupController := controllers.NewLookupController(service)

	lookup := router.Group("/lookup")
	{
		lookup.GET("/users/:swipecard", lookupController.LookupUser)
		lookup.GET("/plates/:barcode", lookupController.LookupPlate)
	}
}
