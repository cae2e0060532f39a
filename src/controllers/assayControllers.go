package controllers

import (
	"net/http"
	"strconv"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

type AssayController struct {
	service *services.AssayService
}

func NewAssayController(service *services.AssayService) *AssayController {
	return &AssayController{service: service}
}

// GetAllAssays handles GET requests to retrieve all assay records
func (c *AssayController) GetAllAssays(ctx *gin.Context) {
	assays, err := c.service.GetAllAssays()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, assays)
}

// GetAssayByID handles GET requests to retrieve an assay record by ID
func (c *AssayController) GetAssayByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assay ID"})
		return
	}

	assay, err := c.service.GetAssayByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, assay)
}

// CreateAssay handles POST requests to create a new assay record
func (c *AssayController) CreateAssay(ctx *gin.Context) {
	var assay models.AssayModel
	if err := ctx.ShouldBindJSON(&assay); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdAssay, err := c.service.CreateAssay(&assay)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, createdAssay)
}

// UpdateAssay handles PUT requests to update an existing assay record
func (c *AssayController) UpdateAssay(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assay ID"})
		return
	}

	var updatedData models.AssayModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedAssay, err := c.service.UpdateAssay(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedAssay)
}

// DeleteAssay handles DELETE requests to remove an assay record
func (c *AssayController) DeleteAssay(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assay ID"})
		return
	}

	if err := c.service.DeleteAssay(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
