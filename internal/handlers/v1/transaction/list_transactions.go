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

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Upper bound on created_at locked in from the first page"`
}

// ListTransactionsFilter narrows the listing.
type ListTransactionsFilter struct {
	From     string `json:"from,omitempty" format:"date-time" doc:"Only entries created at or after this time"`
	To       string `json:"to,omitempty" format:"date-time" doc:"Only entries created at or before this time"`
	Type     string `json:"type,omitempty" doc:"Transaction type name"`
	Category string `json:"category,omitempty" doc:"Category name"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	AccountID string                  `json:"accountID" required:"true" doc:"Account UUID"`
	Filter    *ListTransactionsFilter `json:"filter,omitempty" doc:"Optional filters"`
	Cursor    *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, accountID uuid.UUID, filter service.TransactionFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	LedgerService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{LedgerService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of an account's transactions using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// When a cursor is provided, limit and maxCreationTime come from it.
// Without a cursor, the service uses its default limit.
func parseListTransactionsInput(input *ListTransactionsInput) (accountID uuid.UUID, filter service.TransactionFilter, cursor *service.TransactionCursor, err error) {
	accountID, err = uuid.FromString(input.Body.AccountID)
	if err != nil {
		return accountID, filter, nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	filter, err = parseFilter(input.Body.Filter)
	if err != nil {
		return accountID, filter, nil, err
	}

	if input.Body.Cursor == nil {
		return accountID, filter, nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return accountID, filter, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	maxCreationTime, parseErr := time.Parse(time.RFC3339, input.Body.Cursor.MaxCreationTime)
	if parseErr != nil {
		return accountID, filter, nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", parseErr)
	}

	cursor = &service.TransactionCursor{
		Position:        input.Body.Cursor.Position,
		Limit:           input.Body.Cursor.Limit,
		MaxCreationTime: maxCreationTime,
	}
	return accountID, filter, cursor, nil
}

func parseFilter(body *ListTransactionsFilter) (service.TransactionFilter, error) {
	var filter service.TransactionFilter
	if body == nil {
		return filter, nil
	}

	if body.From != "" {
		from, err := time.Parse(time.RFC3339, body.From)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid filter from", err)
		}
		filter.From = omit.From(from)
	}
	if body.To != "" {
		to, err := time.Parse(time.RFC3339, body.To)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid filter to", err)
		}
		filter.To = omit.From(to)
	}
	if body.Type != "" {
		entryType, ok := ledger.TypeFromString(body.Type)
		if !ok {
			return filter, huma.NewError(http.StatusBadRequest, "unknown transaction type "+body.Type)
		}
		filter.Type = omit.From(entryType)
	}
	if body.Category != "" {
		cat, ok := ledger.CategoryFromString(body.Category)
		if !ok {
			return filter, huma.NewError(http.StatusBadRequest, "unknown category "+body.Category)
		}
		filter.Category = omit.From(cat)
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, filter, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.LedgerService.ListTransactions(ctx, accountID, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = FromService(tx)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
