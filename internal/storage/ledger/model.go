package ledger

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type identifies the kind of monetary event an entry records.
type Type int8

const (
	TypeDeposit Type = iota
	TypeWithdrawal
	TypeTransferOut
	TypeTransferIn
	TypeBillPayment
	TypeRecurringPayment
)

func (t Type) String() string {
	switch t {
	case TypeDeposit:
		return "deposit"
	case TypeWithdrawal:
		return "withdrawal"
	case TypeTransferOut:
		return "transfer_out"
	case TypeTransferIn:
		return "transfer_in"
	case TypeBillPayment:
		return "bill_payment"
	case TypeRecurringPayment:
		return "recurring_payment"
	}
	return "unknown"
}

// TypeFromString parses the wire name of a transaction type.
func TypeFromString(s string) (Type, bool) {
	for _, t := range []Type{TypeDeposit, TypeWithdrawal, TypeTransferOut, TypeTransferIn, TypeBillPayment, TypeRecurringPayment} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Status is the lifecycle state of an entry. Completed and failed are
// terminal; entries are never edited afterwards, only offset by new entries.
type Status int8

const (
	StatusPending Status = iota
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Category is the reporting category derived from an entry's metadata at
// append time. The classifier is deterministic, so the stored value always
// matches a re-classification of the same entry.
type Category int8

const (
	CategoryDeposit Category = iota
	CategoryWithdrawal
	CategoryTransfer
	CategoryPayment
	CategoryFood
	CategoryTransport
	CategoryShopping
	CategoryUtilities
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryDeposit:
		return "deposit"
	case CategoryWithdrawal:
		return "withdrawal"
	case CategoryTransfer:
		return "transfer"
	case CategoryPayment:
		return "payment"
	case CategoryFood:
		return "food"
	case CategoryTransport:
		return "transport"
	case CategoryShopping:
		return "shopping"
	case CategoryUtilities:
		return "utilities"
	}
	return "other"
}

// CategoryFromString parses the wire name of a category.
func CategoryFromString(s string) (Category, bool) {
	for _, c := range []Category{
		CategoryDeposit, CategoryWithdrawal, CategoryTransfer, CategoryPayment,
		CategoryFood, CategoryTransport, CategoryShopping, CategoryUtilities, CategoryOther,
	} {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Entry represents one row of the append-only transaction ledger.
// Amount is signed: positive credits the account, negative debits it.
type Entry struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Seq             int64
	Amount          decimal.Decimal
	Type            Type
	Category        Category
	Description     string
	CounterpartyRef string
	CorrelationID   uuid.NullUUID
	Status          Status
	CreatedAt       time.Time
}

// EntryCreate is the input for appending a new ledger entry.
type EntryCreate struct {
	AccountID       uuid.UUID
	Amount          decimal.Decimal
	Type            Type
	Category        Category
	Description     string
	CounterpartyRef string
	CorrelationID   uuid.NullUUID
	Status          Status
}

// Filter specifies filters for listing ledger entries. Optional fields use
// omit.Val so an unset filter is distinct from a zero value.
type Filter struct {
	AccountID uuid.UUID
	From      omit.Val[time.Time]
	To        omit.Val[time.Time]
	Type      omit.Val[Type]
	Category  omit.Val[Category]
	Limit     int
	Offset    int
	// MaxCreationTime pins the result set of a paginated query so later
	// pages do not shift when new entries are appended.
	MaxCreationTime *time.Time
}

// Table defines the ledger storage operations.
//
//go:generate mockery --name Table --output mock_Table.go
type Table interface {
	Append(ctx context.Context, create *EntryCreate) (*Entry, error)
	List(ctx context.Context, filter *Filter) ([]*Entry, error)
	SumCompleted(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}
