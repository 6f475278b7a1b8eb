package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harbor-networks/ledger-server/internal/service"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, accountID uuid.UUID, filter service.TransactionFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, accountID, filter, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{AccountID: accountID.String()},
	}

	gotID, _, cursor, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Equal(t, accountID, gotID)
	assert.Nil(t, cursor)
}

func TestParseListTransactionsInput_WithCursor(t *testing.T) {
	cursorMaxTime := "2026-06-15T08:00:00Z"

	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Cursor: &ListTransactionsCursor{
				Position:        40,
				Limit:           10,
				MaxCreationTime: cursorMaxTime,
			},
		},
	}

	_, _, cursor, err := parseListTransactionsInput(input)
	assert.NoError(t, err)

	expectedMax, _ := time.Parse(time.RFC3339, cursorMaxTime)
	assert.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, expectedMax, cursor.MaxCreationTime)
}

func TestParseListTransactionsInput_InvalidAccountID(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{AccountID: "not-a-uuid"},
	}

	_, _, _, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

func TestParseListTransactionsInput_Filters(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Filter: &ListTransactionsFilter{
				From:     "2026-06-01T00:00:00Z",
				Type:     "bill_payment",
				Category: "utilities",
			},
		},
	}

	_, filter, _, err := parseListTransactionsInput(input)
	assert.NoError(t, err)

	from, ok := filter.From.Get()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), from)

	entryType, ok := filter.Type.Get()
	assert.True(t, ok)
	assert.Equal(t, ledger.TypeBillPayment, entryType)

	category, ok := filter.Category.Get()
	assert.True(t, ok)
	assert.Equal(t, ledger.CategoryUtilities, category)
}

func TestParseListTransactionsInput_UnknownType(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			AccountID: uuid.Must(uuid.NewV4()).String(),
			Filter:    &ListTransactionsFilter{Type: "wire"},
		},
	}

	_, _, _, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func makeServiceTransaction(accountID uuid.UUID, now time.Time) service.Transaction {
	return service.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		AccountID:   accountID,
		Seq:         1,
		Amount:      decimal.RequireFromString("10.00"),
		Type:        ledger.TypeDeposit,
		Category:    ledger.CategoryDeposit,
		Description: "Deposit",
		Status:      ledger.StatusCompleted,
		CreatedAt:   now,
	}
}

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.Must(uuid.NewV4())
	tx := makeServiceTransaction(accountID, now)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, accountID, mock.Anything, (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{tx}, (*service.TransactionCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		AccountID: accountID.String(),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, tx.ID.String(), body.Transactions[0].ID)
	assert.Equal(t, "deposit", body.Transactions[0].Type)
	assert.Equal(t, "completed", body.Transactions[0].Status)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_MultiplePages(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.Must(uuid.NewV4())
	svcDefaultLimit := 20

	txs := []service.Transaction{
		makeServiceTransaction(accountID, now),
		makeServiceTransaction(accountID, now.Add(-time.Minute)),
	}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, accountID, mock.Anything, (*service.TransactionCursor)(nil)).
		Return(txs, &service.TransactionCursor{
			Position:        svcDefaultLimit,
			Limit:           svcDefaultLimit,
			MaxCreationTime: now,
		}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		AccountID: accountID.String(),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, svcDefaultLimit, body.NextCursor.Position)
	assert.Equal(t, svcDefaultLimit, body.NextCursor.Limit)
	assert.Equal(t, now.Format(time.RFC3339), body.NextCursor.MaxCreationTime)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_WithCursor(t *testing.T) {
	maxTime := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, accountID, mock.Anything, mock.MatchedBy(func(c *service.TransactionCursor) bool {
		return c != nil &&
			c.Position == 40 &&
			c.Limit == 10 &&
			c.MaxCreationTime.Equal(maxTime)
	})).Return(([]service.Transaction)(nil), (*service.TransactionCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		AccountID: accountID.String(),
		Cursor: &ListTransactionsCursor{
			Position:        40,
			Limit:           10,
			MaxCreationTime: maxTime.Format(time.RFC3339),
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(([]service.Transaction)(nil), (*service.TransactionCursor)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		AccountID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidCursorMaxCreationTime(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		AccountID: uuid.Must(uuid.NewV4()).String(),
		Cursor: &ListTransactionsCursor{
			Position:        0,
			Limit:           10,
			MaxCreationTime: "not-a-date",
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}
