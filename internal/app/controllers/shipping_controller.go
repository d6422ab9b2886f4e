package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/services"
	"github.com/kritsada/alumnihub/internal/middleware"
)

// ShippingController handles shipping state management
type ShippingController struct {
	shippingService *services.ShippingService
	logger          zerolog.Logger
}

// NewShippingController creates a new ShippingController
func NewShippingController(shippingService *services.ShippingService, logger zerolog.Logger) *ShippingController {
	return &ShippingController{
		shippingService: shippingService,
		logger:          logger,
	}
}

// ShippingList handles the shipping work queue
// @Summary List shipping-eligible records
// @Description Returns approved mail-delivery records with optional filters.
// @Tags shipping
// @Produce json
// @Security BearerAuth
// @Param shippingStatus query string false "Filter by shipping status" Enums(awaiting_shipment, in_transit, delivered)
// @Param search query string false "Search in name, national ID, phone"
// @Param department query string false "Filter by department"
// @Param graduationYear query int false "Filter by graduation year"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.ShippingListResponse} "Shipping-eligible records"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /alumni/shipping-list [get]
func (c *ShippingController) ShippingList(ctx *gin.Context) {
	var req dto.ShippingFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	list, err := c.shippingService.ShippingList(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// UpdateShipping handles a single shipping update
// @Summary Update shipping state
// @Description Updates shipping status, tracking number and notes for one record. Backward transitions require the correction flag.
// @Tags shipping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Param request body dto.UpdateShippingRequest true "Shipping update"
// @Success 200 {object} dto.APIResponse{data=models.Alumni} "Updated record"
// @Failure 400 {object} dto.ErrorResponse "Record not eligible for shipping"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Backward transition without correction flag"
// @Router /alumni/{id}/shipping [patch]
func (c *ShippingController) UpdateShipping(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateShippingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	alumni, err := c.shippingService.UpdateShipping(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// BulkUpdateShipping handles bulk shipping updates
// @Summary Bulk update shipping status
// @Description Applies one shipping status to many records in a single transaction. Ineligible records are skipped.
// @Tags shipping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkShippingRequest true "Bulk shipping update"
// @Success 200 {object} dto.APIResponse{data=dto.BulkShippingResponse} "Bulk update summary"
// @Failure 400 {object} dto.ErrorResponse "Empty selection or invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /alumni/bulk-shipping [post]
func (c *ShippingController) BulkUpdateShipping(ctx *gin.Context) {
	var req dto.BulkShippingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.shippingService.BulkUpdateShipping(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int("requested", len(req.AlumniIDs)).
		Int("updated", result.UpdatedCount).
		Str("shippingStatus", req.ShippingStatus).
		Msg("Bulk shipping update applied")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ShippingStatistics handles the shipping dashboard counters
// @Summary Get shipping statistics
// @Description Returns aggregate counts by shipping status over eligible records.
// @Tags shipping
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ShippingStatistics} "Shipping statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /alumni/shipping-statistics [get]
func (c *ShippingController) ShippingStatistics(ctx *gin.Context) {
	stats, err := c.shippingService.ShippingStatistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
