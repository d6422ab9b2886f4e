package dto

import (
	"time"

	"github.com/kritsada/alumnihub/internal/app/models"
)

// ReportFilterRequest filters the detailed shipping report
type ReportFilterRequest struct {
	ShippingStatus string `form:"shippingStatus" binding:"omitempty,oneof=awaiting_shipment in_transit delivered"`
	Department     string `form:"department"`
	GraduationYear int    `form:"graduationYear"`
	DateFrom       string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo         string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
}

// ReportRow is one line of the detailed shipping report
type ReportRow struct {
	AlumniID       int64                 `json:"alumniId"`
	FullName       string                `json:"fullName"`
	Department     string                `json:"department"`
	GraduationYear int                   `json:"graduationYear"`
	Address        string                `json:"address"`
	Phone          string                `json:"phone"`
	ShippingStatus models.ShippingStatus `json:"shippingStatus"`
	TrackingNumber *string               `json:"trackingNumber,omitempty"`
	ShippedDate    *time.Time            `json:"shippedDate,omitempty"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// DetailedReportResponse is the filtered report plus its summary counts
type DetailedReportResponse struct {
	Rows    []ReportRow        `json:"rows"`
	Summary ShippingStatistics `json:"summary"`
}
