package controllers

import (
	"net/http"
	"strconv"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

type StandardController struct {
	service *services.StandardService
}

func NewStandardController(service *services.StandardService) *StandardController {
	return &StandardController{service: service}
}

// GetAllStandards handles GET requests to retrieve all standard records
func (c *StandardController) GetAllStandards(ctx *gin.Context) {
	standards, err := c.service.GetAllStandards()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, standards)
}

// GetStandardByID handles GET requests to retrieve a standard record by ID
func (c *StandardController) GetStandardByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid standard ID"})
		return
	}

	standard, err := c.service.GetStandardByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, standard)
}

// CreateStandard handles POST requests to create a new standard record
func (c *StandardController) CreateStandard(ctx *gin.Context) {
	var standard models.StandardModel
	if err := ctx.ShouldBindJSON(&standard); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdStandard, err := c.service.CreateStandard(&standard)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, createdStandard)
}

// UpdateStandard handles PUT requests to update an existing standard record
func (c *StandardController) UpdateStandard(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid standard ID"})
		return
	}

	var updatedData models.StandardModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedStandard, err := c.service.UpdateStandard(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedStandard)
}

// DeleteStandard handles DELETE requests to remove a standard record
func (c *StandardController) DeleteStandard(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid standard ID"})
		return
	}

	if err := c.service.DeleteStandard(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
