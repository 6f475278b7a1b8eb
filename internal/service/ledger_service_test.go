package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

func newLedgerTestService(t *testing.T) (*LedgerService, *ledger.MockTable) {
	t.Helper()
	mockTable := ledger.NewMockTable(t)
	store := &storage.Storage{Ledger: mockTable}
	svc := NewLedgerService(store)
	return svc, mockTable
}

func makeStorageEntries(accountID uuid.UUID, n int, newest time.Time) []*ledger.Entry {
	rows := make([]*ledger.Entry, n)
	for i := range rows {
		rows[i] = &ledger.Entry{
			ID:          uuid.Must(uuid.NewV4()),
			AccountID:   accountID,
			Seq:         int64(n - i),
			Amount:      decimal.RequireFromString("10.00"),
			Type:        ledger.TypeDeposit,
			Category:    ledger.CategoryDeposit,
			Description: "Deposit",
			Status:      ledger.StatusCompleted,
			CreatedAt:   newest.Add(-time.Duration(i) * time.Minute),
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockTable := newLedgerTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return([]*ledger.Entry{}, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), accountID, TransactionFilter{}, nil)

	assert.NoError(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, next)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, mockTable := newLedgerTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	newest := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := makeStorageEntries(accountID, 3, newest)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *ledger.Filter) bool {
		return f.AccountID == accountID &&
			f.Limit == defaultTransactionLimit &&
			f.Offset == 0 &&
			f.MaxCreationTime == nil
	})).Return(rows, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), accountID, TransactionFilter{}, nil)

	assert.NoError(t, err)
	assert.Len(t, transactions, 3)
	assert.Nil(t, next)
	assert.Equal(t, rows[0].ID, transactions[0].ID)
	assert.Equal(t, rows[0].Seq, transactions[0].Seq)
	assert.True(t, rows[0].Amount.Equal(transactions[0].Amount))
}

func TestListTransactions_FirstPagePinsMaxCreationTime(t *testing.T) {
	svc, mockTable := newLedgerTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	newest := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := makeStorageEntries(accountID, defaultTransactionLimit+1, newest)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), accountID, TransactionFilter{}, nil)

	assert.NoError(t, err)
	assert.Len(t, transactions, defaultTransactionLimit)
	assert.NotNil(t, next)
	assert.Equal(t, defaultTransactionLimit, next.Position)
	assert.Equal(t, defaultTransactionLimit, next.Limit)
	assert.Equal(t, newest, next.MaxCreationTime, "pinned to the newest entry of the first page")
}

func TestListTransactions_LaterPagesKeepPinnedTime(t *testing.T) {
	svc, mockTable := newLedgerTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	pinned := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := makeStorageEntries(accountID, 3, pinned.Add(-time.Hour))

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *ledger.Filter) bool {
		return f.Limit == 2 &&
			f.Offset == 2 &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(pinned)
	})).Return(rows, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), accountID, TransactionFilter{}, &TransactionCursor{
		Position:        2,
		Limit:           2,
		MaxCreationTime: pinned,
	})

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.NotNil(t, next)
	assert.Equal(t, 4, next.Position)
	assert.Equal(t, pinned, next.MaxCreationTime, "cursor time survives page turns")
}

func TestListTransactions_FiltersPassedThrough(t *testing.T) {
	svc, mockTable := newLedgerTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	rows := makeStorageEntries(accountID, 1, from.Add(time.Hour))

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *ledger.Filter) bool {
		gotFrom, hasFrom := f.From.Get()
		gotType, hasType := f.Type.Get()
		gotCategory, hasCategory := f.Category.Get()
		return hasFrom && gotFrom.Equal(from) &&
			hasType && gotType == ledger.TypeBillPayment &&
			hasCategory && gotCategory == ledger.CategoryUtilities
	})).Return(rows, nil)

	_, _, err := svc.ListTransactions(context.Background(), accountID, TransactionFilter{
		From:     omit.From(from),
		Type:     omit.From(ledger.TypeBillPayment),
		Category: omit.From(ledger.CategoryUtilities),
	}, nil)

	assert.NoError(t, err)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable := newLedgerTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	transactions, next, err := svc.ListTransactions(context.Background(), uuid.Must(uuid.NewV4()), TransactionFilter{}, nil)

	assert.Error(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, next)
}
