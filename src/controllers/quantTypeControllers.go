package controllers

import (
	"net/http"
	"strconv"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

type QuantTypeController struct {
	service *services.QuantTypeService
}

func NewQuantTypeController(service *services.QuantTypeService) *QuantTypeController {
	return &QuantTypeController{service: service}
}

// GetAllQuantTypes handles GET requests to retrieve all quant type records
func (c *QuantTypeController) GetAllQuantTypes(ctx *gin.Context) {
	quantTypes, err := c.service.GetAllQuantTypes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quantTypes)
}

// GetQuantTypeByID handles GET requests to retrieve a quant type record by ID
func (c *QuantTypeController) GetQuantTypeByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quant type ID"})
		return
	}

	quantType, err := c.service.GetQuantTypeByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quantType)
}

// CreateQuantType handles POST requests to create a new quant type record
func (c *QuantTypeController) CreateQuantType(ctx *gin.Context) {
	var quantType models.QuantTypeModel
	if err := ctx.ShouldBindJSON(&quantType); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdQuantType, err := c.service.CreateQuantType(&quantType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, createdQuantType)
}

// UpdateQuantType handles PUT requests to update an existing quant type record
func (c *QuantTypeController) UpdateQuantType(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quant type ID"})
		return
	}

	var updatedData models.QuantTypeModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedQuantType, err := c.service.UpdateQuantType(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedQuantType)
}

// DeleteQuantType handles DELETE requests to remove a quant type record
func (c *QuantTypeController) DeleteQuantType(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quant type ID"})
		return
	}

	if err := c.service.DeleteQuantType(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
