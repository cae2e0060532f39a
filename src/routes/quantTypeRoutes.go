package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupQuantTypeRoutes(router *gin.Engine, service *services.QuantTypeService) {
	quantTypeController := controllers.NewQuantTypeController(service)

	// Public routes
	router.GET("/quant_types", quantTypeController.GetAllQuantTypes)
	router.GET("/quant_types/:id", quantTypeController.GetQuantTypeByID)

	// Protected routes
	quantType := router.Group("/quant_types")
	quantType.Use(middleware.AuthMiddleware())
	{
		quantType.POST("", quantTypeController.CreateQuantType)
		quantType.PUT("/:id", quantTypeController.UpdateQuantType)
		quantType.DELETE("/:id", quantTypeController.DeleteQuantType)
	}
}
