package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harbor-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/harbor-networks/ledger-server/internal/logging"
	"github.com/harbor-networks/ledger-server/internal/service"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

// ExportTransactionsInput is the Huma input for exporting transactions.
type ExportTransactionsInput struct {
	ID       string `path:"id" doc:"Account UUID"`
	Format   string `query:"format" enum:"csv,pdf" default:"csv" doc:"Export format"`
	From     string `query:"from" required:"false" format:"date-time" doc:"Only entries created at or after this time"`
	To       string `query:"to" required:"false" format:"date-time" doc:"Only entries created at or before this time"`
	Type     string `query:"type" required:"false" doc:"Transaction type name"`
	Category string `query:"category" required:"false" doc:"Category name"`
}

// ExportTransactionsOutput is the Huma output for exporting transactions.
type ExportTransactionsOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// transactionExporter is the interface for exporting transactions.
type transactionExporter interface {
	ExportTransactions(ctx context.Context, accountID uuid.UUID, filter service.TransactionFilter, format service.ExportFormat) ([]byte, string, error)
}

// ExportTransactionsHandler handles GET /v1/account/{id}/transactions/export.
type ExportTransactionsHandler struct {
	LedgerService transactionExporter
}

// NewExportTransactionsHandler creates a new ExportTransactionsHandler.
func NewExportTransactionsHandler(svc transactionExporter) *ExportTransactionsHandler {
	return &ExportTransactionsHandler{LedgerService: svc}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}/transactions/export",
		Summary:     "Export transactions",
		Description: "Exports an account's transactions as CSV or PDF, honoring the same filters as the listing endpoint.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseExportTransactionsInput(input *ExportTransactionsInput) (uuid.UUID, service.TransactionFilter, service.ExportFormat, error) {
	var filter service.TransactionFilter

	accountID, err := uuid.FromString(input.ID)
	if err != nil {
		return accountID, filter, "", huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	if input.From != "" {
		from, parseErr := time.Parse(time.RFC3339, input.From)
		if parseErr != nil {
			return accountID, filter, "", huma.NewError(http.StatusBadRequest, "invalid from", parseErr)
		}
		filter.From = omit.From(from)
	}
	if input.To != "" {
		to, parseErr := time.Parse(time.RFC3339, input.To)
		if parseErr != nil {
			return accountID, filter, "", huma.NewError(http.StatusBadRequest, "invalid to", parseErr)
		}
		filter.To = omit.From(to)
	}
	if input.Type != "" {
		entryType, ok := ledger.TypeFromString(input.Type)
		if !ok {
			return accountID, filter, "", huma.NewError(http.StatusBadRequest, "unknown transaction type "+input.Type)
		}
		filter.Type = omit.From(entryType)
	}
	if input.Category != "" {
		cat, ok := ledger.CategoryFromString(input.Category)
		if !ok {
			return accountID, filter, "", huma.NewError(http.StatusBadRequest, "unknown category "+input.Category)
		}
		filter.Category = omit.From(cat)
	}

	format := service.ExportFormat(input.Format)
	if format != service.ExportFormatCSV && format != service.ExportFormatPDF {
		return accountID, filter, "", huma.NewError(http.StatusBadRequest, "format must be csv or pdf")
	}

	return accountID, filter, format, nil
}

func (h *ExportTransactionsHandler) handle(ctx context.Context, input *ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, filter, format, err := parseExportTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("exportTransactionsMs")
	}
	data, contentType, err := h.LedgerService.ExportTransactions(ctx, accountID, filter, format)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to export transactions")
	}

	if logData != nil {
		logData.AddData("exportBytes", len(data))
		logData.AddData("exportFormat", string(format))
	}

	return &ExportTransactionsOutput{
		ContentType: contentType,
		Body:        data,
	}, nil
}
