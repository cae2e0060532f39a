package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupInputRoutes(router *gin.Engine, service *services.InputService) {
	inputController := controllers.NewInputController(service)

	// Public routes
	router.GET("/inputs", inputController.GetAllInputs)
	router.GET("/inputs/:id", inputController.GetInputByID)

	// Protected routes
	input := router.Group("/inputs")
	input.Use(middleware.AuthMiddleware())
	{
		input.POST("", inputController.CreateInput)
		input.PUT("/:id", inputController.UpdateInput)
		input.DELETE("/:id", inputController.DeleteInput)
	}
}
