package models

import (
	"time"
)

// Status is the membership approval state of an alumni record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// DeliveryOption is how the member receives their membership card.
type DeliveryOption string

const (
	DeliveryPickup DeliveryOption = "pickup"
	DeliveryMail   DeliveryOption = "mail"
)

// DefaultPosition is the association position every new member starts with.
const DefaultPosition = "สมาชิกสามัญ"

// ShippingStatus is the delivery lifecycle state of a mailed card.
type ShippingStatus string

const (
	ShippingAwaiting  ShippingStatus = "awaiting_shipment"
	ShippingInTransit ShippingStatus = "in_transit"
	ShippingDelivered ShippingStatus = "delivered"
)

// ValidStatus reports whether s is a known membership status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ValidShippingStatus reports whether s is a known shipping status.
func ValidShippingStatus(s ShippingStatus) bool {
	switch s {
	case ShippingAwaiting, ShippingInTransit, ShippingDelivered:
		return true
	}
	return false
}

// shippingRank orders shipping statuses along the delivery lifecycle.
var shippingRank = map[ShippingStatus]int{
	ShippingAwaiting:  0,
	ShippingInTransit: 1,
	ShippingDelivered: 2,
}

// IsForwardTransition reports whether moving from one shipping status to
// another follows the awaiting_shipment -> in_transit -> delivered direction.
// Equal statuses count as forward (idempotent re-submit of the same state).
func IsForwardTransition(from, to ShippingStatus) bool {
	return shippingRank[to] >= shippingRank[from]
}

// Alumni defines the alumni record model based on the 'alumni' table
type Alumni struct {
	ID             int64          `json:"id" db:"id" example:"1"`
	FirstName      string         `json:"firstName" db:"first_name" example:"Somchai"`
	LastName       string         `json:"lastName" db:"last_name" example:"Jaidee"`
	NationalID     string         `json:"nationalId" db:"national_id" example:"1103701234563"`
	Address        string         `json:"address" db:"address"`
	Phone          string         `json:"phone" db:"phone" example:"0812345678"`
	Email          string         `json:"email" db:"email" example:"somchai@example.com"`
	Department     string         `json:"department" db:"department" example:"อิเล็กทรอนิกส์"`
	GraduationYear int            `json:"graduationYear" db:"graduation_year" example:"2560"`
	Position       string         `json:"position" db:"position" example:"สมาชิกสามัญ"`
	Status         Status         `json:"status" db:"status" example:"pending"`
	DeliveryOption DeliveryOption `json:"deliveryOption" db:"delivery_option" example:"mail"`
	ShippingStatus ShippingStatus `json:"shippingStatus" db:"shipping_status" example:"awaiting_shipment"`
	TrackingNumber *string        `json:"trackingNumber,omitempty" db:"tracking_number" example:"EMS123456789TH"` // Nullable until assigned
	ShippedDate    *time.Time     `json:"shippedDate,omitempty" db:"shipped_date"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`

	// Relation, loaded on single-record reads only
	ShippingHistory []ShippingHistoryEntry `json:"shippingHistory,omitempty"`
}

// ShippableNow reports whether shipping fields are meaningful for this record.
// They only are for approved members who chose mail delivery.
func (a *Alumni) ShippableNow() bool {
	return a.Status == StatusApproved && a.DeliveryOption == DeliveryMail
}

// ShippingHistoryEntry is one append-only snapshot of a shipping change,
// based on the 'shipping_history' table.
type ShippingHistoryEntry struct {
	ID             int64          `json:"id" db:"id"`
	AlumniID       int64          `json:"alumniId" db:"alumni_id"`
	Status         ShippingStatus `json:"status" db:"status"`
	TrackingNumber *string        `json:"trackingNumber,omitempty" db:"tracking_number"`
	Notes          *string        `json:"notes,omitempty" db:"notes"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}
