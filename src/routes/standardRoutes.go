package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupStandardRoutes(router *gin.Engine, service *services.StandardService) {
	standardController := controllers.NewStandardController(service)

	// Public routes
	router.GET("/standards", standardController.GetAllStandards)
	router.GET("/standards/:id", standardController.GetStandardByID)

	// Protected routes
	standard := router.Group("/standards")
	standard.Use(middleware.AuthMiddleware())
	{
		standard.POST("", standardController.CreateStandard)
		standard.PUT("/:id", standardController.UpdateStandard)
		standard.DELETE("/:id", standardController.DeleteStandard)
	}
}
