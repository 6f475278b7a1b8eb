package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jung-kurt/gofpdf"

	"github.com/harbor-networks/ledger-server/internal/fault"
)

// ExportFormat selects the export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

var exportHeader = []string{"date", "type", "amount", "description", "category", "status"}

// ExportTransactions renders an account's filtered transactions as a byte
// stream. It walks the same paginated listing the UI reads, so an export
// reparsed always matches the list view.
func (s *LedgerService) ExportTransactions(ctx context.Context, accountID uuid.UUID, filter TransactionFilter, format ExportFormat) ([]byte, string, error) {
	transactions, err := s.collectAll(ctx, accountID, filter)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case ExportFormatCSV:
		data, err := renderCSV(transactions)
		return data, "text/csv", err
	case ExportFormatPDF:
		data, err := renderPDF(transactions)
		return data, "application/pdf", err
	}
	return nil, "", fault.Validationf("unsupported export format %q", format)
}

func (s *LedgerService) collectAll(ctx context.Context, accountID uuid.UUID, filter TransactionFilter) ([]Transaction, error) {
	var all []Transaction
	var cursor *TransactionCursor
	for {
		page, next, err := s.ListTransactions(ctx, accountID, filter, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == nil {
			return all, nil
		}
		cursor = next
	}
}

func renderCSV(transactions []Transaction) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, tx := range transactions {
		record := []string{
			tx.CreatedAt.Format(time.RFC3339),
			tx.Type.String(),
			tx.Amount.String(),
			tx.Description,
			tx.Category.String(),
			tx.Status.String(),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(transactions []Transaction) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{42, 30, 28, 90, 28, 24}
	for i, title := range exportHeader {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, tx := range transactions {
		cells := []string{
			tx.CreatedAt.Format(time.RFC3339),
			tx.Type.String(),
			tx.Amount.String(),
			tx.Description,
			tx.Category.String(),
			tx.Status.String(),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
