package controllers

import (
	"net/http"
	"strconv"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

type InputController struct {
	service *services.InputService
}

func NewInputController(service *services.InputService) *InputController {
	return &InputController{service: service}
}

// GetAllInputs handles GET requests to retrieve all input records
func (c *InputController) GetAllInputs(ctx *gin.Context) {
	inputs, err := c.service.GetAllInputs()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, inputs)
}

// GetInputByID handles GET requests to retrieve an input record by ID
func (c *InputController) GetInputByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input ID"})
		return
	}

	input, err := c.service.GetInputByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, input)
}

// CreateInput handles POST requests to create a new input record
func (c *InputController) CreateInput(ctx *gin.Context) {
	var input models.InputModel
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdInput, err := c.service.CreateInput(&input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, createdInput)
}

// UpdateInput handles PUT requests to update an existing input record
func (c *InputController) UpdateInput(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input ID"})
		return
	}

	var updatedData models.InputModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedInput, err := c.service.UpdateInput(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedInput)
}

// DeleteInput handles DELETE requests to remove an input record
func (c *InputController) DeleteInput(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input ID"})
		return
	}

	if err := c.service.DeleteInput(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
