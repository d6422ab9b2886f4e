// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/services"
	"github.com/kritsada/alumnihub/internal/middleware"
)

// AlumniController handles alumni registration and record management
type AlumniController struct {
	alumniService *services.AlumniService
	logger        zerolog.Logger
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService *services.AlumniService, logger zerolog.Logger) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
		logger:        logger,
	}
}

// idParam parses the {id} path parameter shared by the record endpoints.
func idParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Register handles public alumni registration
// @Summary Register a new alumni member
// @Description Creates a pending registration. The national ID must be unique.
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body dto.RegisterAlumniRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=models.Alumni} "Registration created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "National ID already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/register [post]
func (c *AlumniController) Register(ctx *gin.Context) {
	var req dto.RegisterAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	alumni, err := c.alumniService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("alumniId", alumni.ID).
		Str("department", alumni.Department).
		Msg("Alumni registration received")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// CheckStatus handles the public status lookup
// @Summary Check registration status
// @Description Looks up a registration by national ID and returns its progress. Shipping fields are included only for approved mail deliveries.
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body dto.StatusCheckRequest true "National ID"
// @Success 200 {object} dto.APIResponse{data=dto.StatusCheckResponse} "Registration status"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /status/check [post]
func (c *AlumniController) CheckStatus(ctx *gin.Context) {
	var req dto.StatusCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	status, err := c.alumniService.CheckStatus(ctx.Request.Context(), req.NationalID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      status,
		Timestamp: time.Now(),
	})
}

// List handles the admin alumni list
// @Summary List alumni records
// @Description Returns a paginated list of alumni records with optional filters.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in name, national ID, phone"
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param department query string false "Filter by department"
// @Param graduationYear query int false "Filter by graduation year"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniListResponse} "Alumni records"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /alumni [get]
func (c *AlumniController) List(ctx *gin.Context) {
	var req dto.AlumniFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	list, err := c.alumniService.List(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// GetByID handles single record lookup
// @Summary Get an alumni record
// @Description Returns one alumni record with its shipping history.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=models.Alumni} "Alumni record"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /alumni/{id} [get]
func (c *AlumniController) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	alumni, err := c.alumniService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// Update handles admin record edits
// @Summary Update an alumni record
// @Description Updates an alumni record's profile fields.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Param request body dto.UpdateAlumniRequest true "Updated record fields"
// @Success 200 {object} dto.APIResponse{data=models.Alumni} "Updated record"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /alumni/{id} [put]
func (c *AlumniController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	alumni, err := c.alumniService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// UpdateStatus handles approval decisions
// @Summary Update registration status
// @Description Sets a registration to pending, approved or rejected.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /alumni/{id}/status [patch]
func (c *AlumniController) UpdateStatus(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.alumniService.UpdateStatus(ctx.Request.Context(), id, models.Status(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("alumniId", id).Str("status", req.Status).Msg("Registration status updated")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Status updated successfully"},
		Timestamp: time.Now(),
	})
}

// UpdatePosition handles association position changes
// @Summary Update a member's association position
// @Description Sets the member's position within the association.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Param request body dto.UpdatePositionRequest true "New position"
// @Success 200 {object} dto.APIResponse{data=models.Alumni} "Updated record"
// @Failure 400 {object} dto.ErrorResponse "Invalid position"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /alumni/{id}/position [patch]
func (c *AlumniController) UpdatePosition(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	alumni, err := c.alumniService.UpdatePosition(ctx.Request.Context(), id, req.Position)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("alumniId", id).Str("position", alumni.Position).Msg("Member position updated")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// Delete handles record removal
// @Summary Delete an alumni record
// @Description Permanently removes an alumni record.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Record deleted"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /alumni/{id} [delete]
func (c *AlumniController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.alumniService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("alumniId", id).Msg("Alumni record deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Record deleted successfully"},
		Timestamp: time.Now(),
	})
}

// Statistics handles the dashboard statistics endpoint
// @Summary Get registry statistics
// @Description Returns aggregate counts by status, delivery option and graduation year.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AlumniStatistics} "Registry statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /alumni/statistics [get]
func (c *AlumniController) Statistics(ctx *gin.Context) {
	stats, err := c.alumniService.Statistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
