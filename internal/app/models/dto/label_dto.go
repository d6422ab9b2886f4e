package dto

import (
	"time"
)

// FourUpLabelRequest renders one 4-up sheet for up to four recipients
type FourUpLabelRequest struct {
	AlumniIDs []int64 `json:"alumniIds" binding:"required,min=1,max=4"`
}

// BulkLabelRequest renders one document containing every recipient
type BulkLabelRequest struct {
	AlumniIDs []int64 `json:"alumniIds" binding:"required,min=1"`
	Type      string  `json:"type" binding:"required,oneof=minimal full"`
}

// CreatePrintJobRequest starts an asynchronous 4-up print job
type CreatePrintJobRequest struct {
	AlumniIDs []int64 `json:"alumniIds" binding:"required,min=1"`
}

// PrintJobResponse is the state of a print job and its sheets
type PrintJobResponse struct {
	ID         string               `json:"id"`
	State      string               `json:"state"`
	SheetCount int                  `json:"sheetCount"`
	Sheets     []PrintSheetResponse `json:"sheets"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// PrintSheetResponse is the per-sheet view inside a print job
type PrintSheetResponse struct {
	Index     int     `json:"index"`
	AlumniIDs []int64 `json:"alumniIds"`
	State     string  `json:"state"`
	Error     string  `json:"error,omitempty"`
}
