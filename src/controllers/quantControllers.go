package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/ARQAP/quanti-backend/src/forms"
	"github.com/ARQAP/quanti-backend/src/i18n"
	"github.com/ARQAP/quanti-backend/src/logging"
	"github.com/ARQAP/quanti-backend/src/middleware"
	"github.com/ARQAP/quanti-backend/src/quant"
	"github.com/ARQAP/quanti-backend/src/sequencescape"
	"github.com/ARQAP/quanti-backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	quantFormPath = "/quants/form"
	quantNewPath  = "/quants/new"
)

type QuantController struct {
	service          *services.QuantService
	quantTypeService *services.QuantTypeService
	translator       *i18n.Translator
}

func NewQuantController(service *services.QuantService, quantTypeService *services.QuantTypeService, translator *i18n.Translator) *QuantController {
	return &QuantController{service: service, quantTypeService: quantTypeService, translator: translator}
}

func (c *QuantController) localizer(ctx *gin.Context) *i18n.Localizer {
	if localizer := middleware.Localizer(ctx); localizer != nil {
		return localizer
	}
	return c.translator.For(c.translator.Match(ctx.GetHeader("Accept-Language")))
}

// failureStatus maps an infrastructure error to a status code
func failureStatus(err error) int {
	if errors.Is(err, sequencescape.ErrSearchNotFound) {
		return http.StatusBadGateway
	}
	var statusErr *sequencescape.StatusError
	if errors.As(err, &statusErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// GetAllQuants handles GET requests to retrieve all quant records
func (c *QuantController) GetAllQuants(ctx *gin.Context) {
	quants, err := c.service.GetAllQuants()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quants)
}

// GetQuantSummaries handles GET requests for the flattened quant list
func (c *QuantController) GetQuantSummaries(ctx *gin.Context) {
	summaries, err := c.service.GetQuantSummaries()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetQuantByID handles GET requests to retrieve a quant record by ID
func (c *QuantController) GetQuantByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quant ID"})
		return
	}

	q, err := c.service.GetQuantByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Quant not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, q)
}

// CreateQuant handles POST requests carrying the quant form as JSON or form fields
func (c *QuantController) CreateQuant(ctx *gin.Context) {
	var request quant.AttributeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	localizer := c.localizer(ctx)
	created, errs, err := c.service.CreateQuant(ctx.Request.Context(), request, localizer)
	if err != nil {
		logging.FromContext(ctx).Error("Failed to create quant: %v", err)
		ctx.JSON(failureStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !errs.Empty() {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":        errs,
			"full_messages": errs.FullMessages(func(f quant.Field) string { return localizer.Attribute(string(f)) }),
		})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// NewQuantForm handles GET requests for the quant creation page
func (c *QuantController) NewQuantForm(ctx *gin.Context) {
	localizer := c.localizer(ctx)
	notice := ""
	if uuid := ctx.Query("created"); uuid != "" {
		notice = localizer.T("forms.created", uuid)
	}
	c.renderForm(ctx, http.StatusOK, localizer, nil, quant.Errors{}, notice)
}

// SubmitQuantForm handles POST requests from the quant creation page
func (c *QuantController) SubmitQuantForm(ctx *gin.Context) {
	values := ctx.PostFormMap("quant")
	request := quant.AttributeRequest{
		SwipecardCode:      values["swipecard_code"],
		QuantType:          values["quant_type"],
		AssayBarcode:       values["assay_barcode"],
		StandardBarcode:    values["standard_barcode"],
		InputBarcode:       values["input_barcode"],
		OverrideExpiryDate: values["override_expiry_date"],
	}

	localizer := c.localizer(ctx)
	created, errs, err := c.service.CreateQuant(ctx.Request.Context(), request, localizer)
	if err != nil {
		logging.FromContext(ctx).Error("Failed to create quant: %v", err)
		ctx.String(failureStatus(err), err.Error())
		return
	}
	if !errs.Empty() {
		c.renderForm(ctx, http.StatusUnprocessableEntity, localizer, values, errs, "")
		return
	}
	ctx.Redirect(http.StatusSeeOther, quantNewPath+"?created="+created.UUID)
}

func (c *QuantController) renderForm(ctx *gin.Context, status int, localizer *i18n.Localizer, values map[string]string, errs quant.Errors, notice string) {
	quantTypes, err := c.quantTypeService.GetAllQuantTypes()
	if err != nil {
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	choices := make([]forms.Choice, 0, len(quantTypes))
	for _, quantType := range quantTypes {
		choices = append(choices, forms.Choice{Value: strconv.Itoa(quantType.Id), Label: quantType.Name})
	}

	// swipecards are never echoed back
	delete(values, "swipecard_code")

	page := forms.QuantPage{
		Lang:   localizer.Tag().String(),
		Title:  localizer.T("forms.title"),
		Action: quantFormPath,
		Notice: notice,
		Errors: errs.FullMessages(func(f quant.Field) string { return localizer.Attribute(string(f)) }),
		Form: forms.NewBuilder("quant",
			forms.WithValues(values),
			forms.WithErrors(func(field string) []string { return errs.On(quant.Field(field)) }),
			forms.WithLabels(localizer.Attribute),
			forms.WithPrompt(localizer.T("forms.select_prompt")),
		),
		QuantTypes:  choices,
		SubmitLabel: localizer.T("forms.submit"),
	}

	var buf bytes.Buffer
	if err := forms.RenderQuantForm(&buf, page); err != nil {
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	ctx.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
