package controllers

import (
	"io"
	"net/http"

	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
)

type ImportController struct {
	service *services.ImportService
}

func NewImportController(service *services.ImportService) *ImportController {
	return &ImportController{service: service}
}

// ImportAssays handles multipart POST requests carrying an xlsx list of assay plates
func (c *ImportController) ImportAssays(ctx *gin.Context) {
	c.importFile(ctx, c.service.ImportAssaysFromExcel)
}

// ImportStandards handles multipart POST requests carrying an xlsx list of standards
func (c *ImportController) ImportStandards(ctx *gin.Context) {
	c.importFile(ctx, c.service.ImportStandardsFromExcel)
}

func (c *ImportController) importFile(ctx *gin.Context, run func(io.Reader) (*services.ImportResult, error)) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing 'file' upload"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to open 'file' upload"})
		return
	}
	defer src.Close()

	result, err := run(src)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
