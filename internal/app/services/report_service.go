package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/repositories"
)

// exportLimit bounds report and export queries. Exports are whole-dataset
// downloads, not pages.
const exportLimit = 10000

// ReportService produces detailed shipping reports and xlsx exports
type ReportService struct {
	repo   AlumniStore
	logger zerolog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(repo AlumniStore, logger zerolog.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		logger: logger,
	}
}

func reportFilter(req *dto.ReportFilterRequest) (repositories.AlumniFilter, error) {
	filter := repositories.AlumniFilter{
		ShippingStatus: models.ShippingStatus(req.ShippingStatus),
		Department:     req.Department,
		GraduationYear: req.GraduationYear,
		ShippableOnly:  true,
	}

	if req.DateFrom != "" {
		from, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return filter, fmt.Errorf("invalid dateFrom: %w", err)
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return filter, fmt.Errorf("invalid dateTo: %w", err)
		}
		filter.DateTo = &to
	}
	return filter, nil
}

func toReportRow(a *models.Alumni) dto.ReportRow {
	return dto.ReportRow{
		AlumniID:       a.ID,
		FullName:       a.FirstName + " " + a.LastName,
		Department:     a.Department,
		GraduationYear: a.GraduationYear,
		Address:        a.Address,
		Phone:          a.Phone,
		ShippingStatus: a.ShippingStatus,
		TrackingNumber: a.TrackingNumber,
		ShippedDate:    a.ShippedDate,
		UpdatedAt:      a.UpdatedAt,
	}
}

// DetailedReport builds the filtered report rows plus summary counts over the
// same filtered set.
func (s *ReportService) DetailedReport(ctx context.Context, req *dto.ReportFilterRequest) (*dto.DetailedReportResponse, error) {
	filter, err := reportFilter(req)
	if err != nil {
		return nil, err
	}

	records, _, err := s.repo.List(ctx, filter, 0, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("error building detailed report: %w", err)
	}

	resp := &dto.DetailedReportResponse{
		Rows: make([]dto.ReportRow, 0, len(records)),
	}
	for i := range records {
		a := &records[i]
		resp.Rows = append(resp.Rows, toReportRow(a))

		resp.Summary.Total++
		switch a.ShippingStatus {
		case models.ShippingAwaiting:
			resp.Summary.AwaitingShipment++
		case models.ShippingInTransit:
			resp.Summary.InTransit++
		case models.ShippingDelivered:
			resp.Summary.Delivered++
		}
		if a.TrackingNumber != nil && *a.TrackingNumber != "" {
			resp.Summary.WithTracking++
		}
	}
	return resp, nil
}

var shippingExportHeaders = []string{
	"ID", "ชื่อ-นามสกุล", "แผนกวิชา", "ปีที่จบ", "ที่อยู่", "โทรศัพท์",
	"สถานะการจัดส่ง", "เลขพัสดุ", "วันที่จัดส่ง", "อัปเดตล่าสุด",
}

func writeShippingSheet(f *excelize.File, sheet string, rows []dto.ReportRow) error {
	for col, header := range shippingExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for i, row := range rows {
		tracking := ""
		if row.TrackingNumber != nil {
			tracking = *row.TrackingNumber
		}
		shipped := ""
		if row.ShippedDate != nil {
			shipped = row.ShippedDate.Format("2006-01-02")
		}
		values := []interface{}{
			row.AlumniID, row.FullName, row.Department, row.GraduationYear,
			row.Address, row.Phone, string(row.ShippingStatus), tracking,
			shipped, row.UpdatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportShippingList writes the filtered shipping list as an xlsx workbook.
func (s *ReportService) ExportShippingList(ctx context.Context, req *dto.ReportFilterRequest) (*bytes.Buffer, string, error) {
	report, err := s.DetailedReport(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return s.buildWorkbook("รายการจัดส่ง", report.Rows, "shipping-list")
}

// ExportDetailed writes the detailed report as an xlsx workbook with a
// summary sheet.
func (s *ReportService) ExportDetailed(ctx context.Context, req *dto.ReportFilterRequest) (*bytes.Buffer, string, error) {
	report, err := s.DetailedReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const dataSheet = "รายงานการจัดส่ง"
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, "", err
	}
	if err := writeShippingSheet(f, dataSheet, report.Rows); err != nil {
		return nil, "", fmt.Errorf("error writing report sheet: %w", err)
	}

	const summarySheet = "สรุป"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, "", err
	}
	summary := [][]interface{}{
		{"ทั้งหมด", report.Summary.Total},
		{"รอการจัดส่ง", report.Summary.AwaitingShipment},
		{"กำลังจัดส่ง", report.Summary.InTransit},
		{"จัดส่งแล้ว", report.Summary.Delivered},
		{"มีเลขพัสดุ", report.Summary.WithTracking},
	}
	for i, pair := range summary {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), pair[0]); err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), pair[1]); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("error generating xlsx: %w", err)
	}
	filename := fmt.Sprintf("shipping-report-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ExportAllMembers writes every alumni record as an xlsx workbook.
func (s *ReportService) ExportAllMembers(ctx context.Context) (*bytes.Buffer, string, error) {
	records, _, err := s.repo.List(ctx, repositories.AlumniFilter{}, 0, exportLimit)
	if err != nil {
		return nil, "", fmt.Errorf("error loading members for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "สมาชิกทั้งหมด"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	headers := []string{
		"ID", "ชื่อ", "นามสกุล", "เลขบัตรประชาชน", "แผนกวิชา", "ปีที่จบ",
		"ตำแหน่ง", "สถานะ", "การรับบัตร", "สถานะการจัดส่ง", "เลขพัสดุ", "วันที่สมัคร",
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for i := range records {
		a := &records[i]
		tracking := ""
		if a.TrackingNumber != nil {
			tracking = *a.TrackingNumber
		}
		values := []interface{}{
			a.ID, a.FirstName, a.LastName, a.NationalID, a.Department,
			a.GraduationYear, a.Position, string(a.Status), string(a.DeliveryOption),
			string(a.ShippingStatus), tracking, a.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("error generating xlsx: %w", err)
	}
	filename := fmt.Sprintf("all-members-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// buildWorkbook writes rows into a single-sheet workbook.
func (s *ReportService) buildWorkbook(sheet string, rows []dto.ReportRow, prefix string) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}
	if err := writeShippingSheet(f, sheet, rows); err != nil {
		return nil, "", fmt.Errorf("error writing export sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("error generating xlsx: %w", err)
	}
	filename := fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
