package routes

import (
	"github.com/ARQAP/quanti-backend/src/controllers"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAssayRoutes(router *gin.Engine, service *services.AssayService) {
	assayController := controllers.NewAssayController(service)

	// Public routes
	router.GET("/assays", assayController.GetAllAssays)
	router.GET("/assays/:id", assayController.GetAssayByID)

	// Protected routes
	assay := router.Group("/assays")
	assay.Use(middleware.AuthMiddleware())
	{
		assay.POST("", assayController.CreateAssay)
		assay.PUT("/:id", assayController.UpdateAssay)
		assay.DELETE("/:id", assayController.DeleteAssay)
	}
}
