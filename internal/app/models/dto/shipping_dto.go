package dto

import (
	"github.com/kritsada/alumnihub/internal/app/models"
)

// UpdateShippingRequest updates shipping state for a single record
type UpdateShippingRequest struct {
	ShippingStatus string `json:"shippingStatus" binding:"required,oneof=awaiting_shipment in_transit delivered"`
	TrackingNumber string `json:"trackingNumber"` // Empty means not yet assigned
	Notes          string `json:"notes"`
	// Correction permits a backward transition, e.g. delivered back to
	// awaiting_shipment after a returned parcel.
	Correction bool `json:"correction"`
}

// BulkShippingRequest applies one status to many records in a single call
type BulkShippingRequest struct {
	AlumniIDs      []int64 `json:"alumniIds" binding:"required"`
	ShippingStatus string  `json:"shippingStatus" binding:"required,oneof=in_transit delivered"`
	Notes          string  `json:"notes"`
}

// BulkShippingResponse summarizes a bulk update
type BulkShippingResponse struct {
	UpdatedCount   int                   `json:"updatedCount"`
	ShippingStatus models.ShippingStatus `json:"shippingStatus"`
}

// ShippingFilterRequest represents shipping list filter parameters
type ShippingFilterRequest struct {
	ShippingStatus string `form:"shippingStatus" binding:"omitempty,oneof=awaiting_shipment in_transit delivered"`
	Search         string `form:"search"`
	Department     string `form:"department"`
	GraduationYear int    `form:"graduationYear"`
	Page           int    `form:"page,default=1" binding:"min=1"`
	PageSize       int    `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// ShippingListResponse represents a page of shipping-eligible records
type ShippingListResponse struct {
	Alumni     []models.Alumni `json:"data"`
	Pagination PaginationInfo  `json:"pagination"`
}

// ShippingStatistics aggregates counts by shipping status
type ShippingStatistics struct {
	Total            int64 `json:"total"`
	AwaitingShipment int64 `json:"awaitingShipment"`
	InTransit        int64 `json:"inTransit"`
	Delivered        int64 `json:"delivered"`
	WithTracking     int64 `json:"withTracking"`
}
