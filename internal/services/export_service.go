package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/EduGate-2025/loan-service/internal/repositories"
)

const exportSheet = "Loan Requests"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *exportService) ExportLoans(ctx context.Context) ([]byte, error) {
	s.logger.Info("Exporting loan requests")

	loans, err := s.repo.Loan().List(ctx, repositories.LoanFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"ID", "Applicant", "Email", "Phone", "Amount", "Purpose", "Course", "Fraud Score", "Status", "Submitted"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}
	}

	for i, loan := range loans {
		row := i + 2
		values := []interface{}{
			loan.ID,
			loan.StudentName,
			loan.StudentEmail,
			deref(loan.Phone),
			loan.LoanAmount,
			deref(loan.Purpose),
			loan.Course,
			loan.FraudScore,
			string(loan.Status),
			loan.RequestDate.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write export row %d: %w", row, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render export workbook: %w", err)
	}

	s.logger.Info("Loan export rendered", "rows", len(loans))
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
