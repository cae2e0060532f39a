package controllers

import (
	"net/http"
	"strconv"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

type StandardTypeController struct {
	service *services.StandardTypeService
}

func NewStandardTypeController(service *services.StandardTypeService) *StandardTypeController {
	return &StandardTypeController{service: service}
}

// GetAllStandardTypes handles GET requests to retrieve all standard type records
func (c *StandardTypeController) GetAllStandardTypes(ctx *gin.Context) {
	standardTypes, err := c.service.GetAllStandardTypes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, standardTypes)
}

// GetStandardTypeByID handles GET requests to retrieve a standard type record by ID
func (c *StandardTypeController) GetStandardTypeByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid standard type ID"})
		return
	}

	standardType, err := c.service.GetStandardTypeByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, standardType)
}

// CreateStandardType handles POST requests to create a new standard type record
func (c *StandardTypeController) CreateStandardType(ctx *gin.Context) {
	var standardType models.StandardTypeModel
	if err := ctx.ShouldBindJSON(&standardType); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdStandardType, err := c.service.CreateStandardType(&standardType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, createdStandardType)
}

// UpdateStandardType handles PUT requests to update an existing standard type record
func (c *StandardTypeController) UpdateStandardType(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid standard type ID"})
		return
	}

	var updatedData models.StandardTypeModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedStandardType, err := c.service.UpdateStandardType(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedStandardType)
}

// DeleteStandardType handles DELETE requests to remove a standard type record
func (c *StandardTypeController) DeleteStandardType(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid standard type ID"})
		return
	}

	if err := c.service.DeleteStandardType(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
