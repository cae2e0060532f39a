package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)
	router.POST("/register", userController.CreateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", userController.GetAllUsers)
		user.DELETE("/:id", userController.DeleteUser)
	}
}
