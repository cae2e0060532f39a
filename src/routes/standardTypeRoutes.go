package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupStandardTypeRoutes(router *gin.Engine, service *services.StandardTypeService) {
	standardTypeController := controllers.NewStandardTypeController(service)

	// Public routes
	router.GET("/standard_types", standardTypeController.GetAllStandardTypes)
	router.GET("/standard_types/:id", standardTypeController.GetStandardTypeByID)

	// Protected routes
	standardType := router.Group("/standard_types")
	standardType.Use(middleware.AuthMiddleware())
	{
		standardType.POST("", standardTypeController.CreateStandardType)
		standardType.PUT("/:id", standardTypeController.UpdateStandardType)
		standardType.DELETE("/:id", standardTypeController.DeleteStandardType)
	}
}
