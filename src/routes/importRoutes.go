package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupImportRoutes(router *gin.Engine, service *services.ImportService) {
	importController := controllers.NewImportController(service)

	// Protected routes
	router.POST("/assays/import", middleware.AuthMiddleware(), importController.ImportAssays)
	router.POST("/standards/import", middleware.AuthMiddleware(), importController.ImportStandards)
}
