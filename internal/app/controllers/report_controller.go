package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/services"
	"github.com/kritsada/alumnihub/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController handles reports and xlsx exports
type ReportController struct {
	reportService *services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

func (c *ReportController) writeWorkbook(ctx *gin.Context, buf *bytes.Buffer, filename string) {
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// DetailedReport handles the detailed shipping report
// @Summary Get detailed shipping report
// @Description Returns filtered report rows with summary counts over the same filter.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param shippingStatus query string false "Filter by shipping status" Enums(awaiting_shipment, in_transit, delivered)
// @Param department query string false "Filter by department"
// @Param graduationYear query int false "Filter by graduation year"
// @Param dateFrom query string false "Updated-at lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Updated-at upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.DetailedReportResponse} "Detailed report"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /shipping/reports/detailed [get]
func (c *ReportController) DetailedReport(ctx *gin.Context) {
	var req dto.ReportFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.DetailedReport(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ExportShippingList handles the shipping list export
// @Summary Export shipping list
// @Description Downloads the filtered shipping list as an xlsx workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param shippingStatus query string false "Filter by shipping status" Enums(awaiting_shipment, in_transit, delivered)
// @Param department query string false "Filter by department"
// @Param graduationYear query int false "Filter by graduation year"
// @Param dateFrom query string false "Updated-at lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Updated-at upper bound (YYYY-MM-DD)"
// @Success 200 {file} file "xlsx workbook"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /shipping/export/shipping-list [get]
func (c *ReportController) ExportShippingList(ctx *gin.Context) {
	var req dto.ReportFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	buf, filename, err := c.reportService.ExportShippingList(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.writeWorkbook(ctx, buf, filename)
}

// ExportDetailed handles the detailed report export
// @Summary Export detailed shipping report
// @Description Downloads the detailed report as an xlsx workbook with a summary sheet.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param shippingStatus query string false "Filter by shipping status" Enums(awaiting_shipment, in_transit, delivered)
// @Param department query string false "Filter by department"
// @Param graduationYear query int false "Filter by graduation year"
// @Param dateFrom query string false "Updated-at lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Updated-at upper bound (YYYY-MM-DD)"
// @Success 200 {file} file "xlsx workbook"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /shipping/export/detailed [get]
func (c *ReportController) ExportDetailed(ctx *gin.Context) {
	var req dto.ReportFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	buf, filename, err := c.reportService.ExportDetailed(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("filename", filename).Msg("Detailed report exported")
	c.writeWorkbook(ctx, buf, filename)
}

// ExportAllMembers handles the full membership export
// @Summary Export all members
// @Description Downloads every alumni record as an xlsx workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "xlsx workbook"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /alumni/export/all-members-excel [get]
func (c *ReportController) ExportAllMembers(ctx *gin.Context) {
	buf, filename, err := c.reportService.ExportAllMembers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("filename", filename).Msg("Member export generated")
	c.writeWorkbook(ctx, buf, filename)
}
