package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/services"
	"github.com/kritsada/alumnihub/internal/middleware"
	"github.com/kritsada/alumnihub/internal/pkg/labels"
)

// LabelController handles label rendering and print jobs
type LabelController struct {
	labelService *services.LabelService
	logger       zerolog.Logger
}

// NewLabelController creates a new LabelController
func NewLabelController(labelService *services.LabelService, logger zerolog.Logger) *LabelController {
	return &LabelController{
		labelService: labelService,
		logger:       logger,
	}
}

func writeLabelHTML(ctx *gin.Context, document []byte) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", document)
}

// MinimalLabel renders a minimal address label
// @Summary Render a minimal label
// @Description Renders a printable minimal address label for one record.
// @Tags labels
// @Produce html
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {string} string "Label document"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /shipping/labels/minimal/{id} [get]
func (c *LabelController) MinimalLabel(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	document, err := c.labelService.RenderSingle(ctx.Request.Context(), id, labels.TypeMinimal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	writeLabelHTML(ctx, document)
}

// SingleLabel renders a full label
// @Summary Render a full label
// @Description Renders a printable full address label for one record.
// @Tags labels
// @Produce html
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {string} string "Label document"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /shipping/labels/single/{id} [get]
func (c *LabelController) SingleLabel(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	document, err := c.labelService.RenderSingle(ctx.Request.Context(), id, labels.TypeFull)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	writeLabelHTML(ctx, document)
}

// FourUpLabels renders one 4-up sheet
// @Summary Render a 4-up label sheet
// @Description Renders one sheet with up to four labels, preserving the requested order.
// @Tags labels
// @Accept json
// @Produce html
// @Security BearerAuth
// @Param request body dto.FourUpLabelRequest true "Up to four alumni IDs"
// @Success 200 {string} string "Label sheet document"
// @Failure 400 {object} dto.ErrorResponse "More than four recipients"
// @Failure 404 {object} dto.ErrorResponse "No matching records"
// @Router /shipping/labels/4up [post]
func (c *LabelController) FourUpLabels(ctx *gin.Context) {
	var req dto.FourUpLabelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	document, err := c.labelService.RenderFourUp(ctx.Request.Context(), req.AlumniIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	writeLabelHTML(ctx, document)
}

// BulkLabels renders one document for many recipients
// @Summary Render bulk labels
// @Description Renders a single document containing a label per recipient.
// @Tags labels
// @Accept json
// @Produce html
// @Security BearerAuth
// @Param request body dto.BulkLabelRequest true "Alumni IDs and label type"
// @Success 200 {string} string "Label document"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "No matching records"
// @Router /shipping/labels/bulk [post]
func (c *LabelController) BulkLabels(ctx *gin.Context) {
	var req dto.BulkLabelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	document, err := c.labelService.RenderBulk(ctx.Request.Context(), req.AlumniIDs, req.Type)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	writeLabelHTML(ctx, document)
}

// CreatePrintJob starts an asynchronous print job
// @Summary Start a print job
// @Description Splits the selection into 4-up sheets and renders them asynchronously with a fixed delay between sheets.
// @Tags labels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePrintJobRequest true "Alumni IDs to print"
// @Success 202 {object} dto.APIResponse{data=dto.PrintJobResponse} "Print job accepted"
// @Failure 400 {object} dto.ErrorResponse "Empty selection"
// @Failure 404 {object} dto.ErrorResponse "No matching records"
// @Router /shipping/print-jobs [post]
func (c *LabelController) CreatePrintJob(ctx *gin.Context) {
	var req dto.CreatePrintJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.labelService.StartPrintJob(ctx.Request.Context(), req.AlumniIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("jobId", job.ID).
		Int("sheets", job.SheetCount).
		Msg("Print job started")

	ctx.JSON(http.StatusAccepted, dto.APIResponse{
		Data:      job,
		Timestamp: time.Now(),
	})
}

// GetPrintJob returns a print job's state
// @Summary Get print job state
// @Description Returns the job state and the per-sheet render states.
// @Tags labels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Print job ID"
// @Success 200 {object} dto.APIResponse{data=dto.PrintJobResponse} "Print job state"
// @Failure 404 {object} dto.ErrorResponse "Print job not found"
// @Router /shipping/print-jobs/{id} [get]
func (c *LabelController) GetPrintJob(ctx *gin.Context) {
	job, err := c.labelService.GetPrintJob(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      job,
		Timestamp: time.Now(),
	})
}

// GetPrintSheet returns one rendered sheet
// @Summary Get a rendered sheet
// @Description Returns the rendered document for one sheet of a print job.
// @Tags labels
// @Produce html
// @Security BearerAuth
// @Param id path string true "Print job ID"
// @Param index path int true "Sheet index (zero-based)"
// @Success 200 {string} string "Sheet document"
// @Failure 404 {object} dto.ErrorResponse "Print job not found"
// @Failure 409 {object} dto.ErrorResponse "Sheet not rendered yet"
// @Router /shipping/print-jobs/{id}/sheets/{index} [get]
func (c *LabelController) GetPrintSheet(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sheet index")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	document, err := c.labelService.GetSheetDocument(ctx.Param("id"), index)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	writeLabelHTML(ctx, document)
}
