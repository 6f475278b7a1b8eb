package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

// Transaction represents a ledger entry in the service layer.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Seq             int64
	Amount          decimal.Decimal
	Type            ledger.Type
	Category        ledger.Category
	Description     string
	CounterpartyRef string
	CorrelationID   uuid.NullUUID
	Status          ledger.Status
	CreatedAt       time.Time
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	From     omit.Val[time.Time]
	To       omit.Val[time.Time]
	Type     omit.Val[ledger.Type]
	Category omit.Val[ledger.Category]
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromStorage(entry *ledger.Entry) Transaction {
	return Transaction{
		ID:              entry.ID,
		AccountID:       entry.AccountID,
		Seq:             entry.Seq,
		Amount:          entry.Amount,
		Type:            entry.Type,
		Category:        entry.Category,
		Description:     entry.Description,
		CounterpartyRef: entry.CounterpartyRef,
		CorrelationID:   entry.CorrelationID,
		Status:          entry.Status,
		CreatedAt:       entry.CreatedAt,
	}
}
