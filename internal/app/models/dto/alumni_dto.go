package dto

import (
	"time"

	"github.com/kritsada/alumnihub/internal/app/models"
)

// RegisterAlumniRequest represents public registration data
type RegisterAlumniRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	NationalID     string `json:"nationalId" binding:"required,len=13,numeric"`
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Department     string `json:"department" binding:"required"`
	GraduationYear int    `json:"graduationYear" binding:"required,gt=2400"` // Buddhist calendar year
	DeliveryOption string `json:"deliveryOption" binding:"required,oneof=pickup mail"`
}

// UpdateAlumniRequest represents admin edits to a record's profile fields
type UpdateAlumniRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Department     string `json:"department" binding:"required"`
	GraduationYear int    `json:"graduationYear" binding:"required,gt=2400"`
	DeliveryOption string `json:"deliveryOption" binding:"required,oneof=pickup mail"`
}

// UpdateStatusRequest changes a record's approval status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// UpdatePositionRequest changes a member's association position
type UpdatePositionRequest struct {
	Position string `json:"position" binding:"required" example:"กรรมการ"`
}

// StatusCheckRequest looks up a registration by national ID
type StatusCheckRequest struct {
	NationalID string `json:"nationalId" binding:"required,len=13,numeric"`
}

// StatusCheckResponse is the public view of one registration's progress
type StatusCheckResponse struct {
	FirstName      string                `json:"firstName"`
	LastName       string                `json:"lastName"`
	Status         models.Status         `json:"status"`
	DeliveryOption models.DeliveryOption `json:"deliveryOption"`
	ShippingStatus models.ShippingStatus `json:"shippingStatus,omitempty"`
	TrackingNumber *string               `json:"trackingNumber,omitempty"`
	RegisteredAt   time.Time             `json:"registeredAt"`
}

// AlumniFilterRequest represents alumni list filter parameters
type AlumniFilterRequest struct {
	Search         string `form:"search"`
	Status         string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Department     string `form:"department"`
	GraduationYear int    `form:"graduationYear"`
	Page           int    `form:"page,default=1" binding:"min=1"`
	PageSize       int    `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// AlumniListResponse represents a page of alumni records
type AlumniListResponse struct {
	Alumni     []models.Alumni `json:"data"`
	Pagination PaginationInfo  `json:"pagination"`
}

// AlumniStatistics aggregates the registry for the admin dashboard
type AlumniStatistics struct {
	Total            int64            `json:"total"`
	ByStatus         map[string]int64 `json:"byStatus"`
	ByDeliveryOption map[string]int64 `json:"byDeliveryOption"`
	ByGraduationYear map[string]int64 `json:"byGraduationYear"`
}
