package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ARQAP/quanti-backend/src/sequencescape"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

type LookupController struct {
	service *services.LookupService
}

func NewLookupController(service *services.LookupService) *LookupController {
	return &LookupController{service: service}
}

// LookupUser handles GET requests searching Sequencescape for a swipecard
func (c *LookupController) LookupUser(ctx *gin.Context) {
	c.respond(ctx, c.service.LookupUser, ctx.Param("swipecard"))
}

// LookupPlate handles GET requests searching Sequencescape for a plate barcode
func (c *LookupController) LookupPlate(ctx *gin.Context) {
	c.respond(ctx, c.service.LookupPlate, ctx.Param("barcode"))
}

func (c *LookupController) respond(ctx *gin.Context, lookup func(context.Context, string) (sequencescape.Result, error), query string) {
	result, err := lookup(ctx.Request.Context(), query)
	switch {
	case errors.Is(err, services.ErrRemoteDisabled):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case err != nil:
		ctx.JSON(failureStatus(err), gin.H{"error": err.Error()})
	case !result.Found():
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No match in Sequencescape"})
	default:
		ctx.JSON(http.StatusOK, result)
	}
}
