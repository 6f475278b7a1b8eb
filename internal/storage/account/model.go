package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type represents an account type.
type Type int8

const (
	TypeChecking Type = iota
	TypeSavings
	TypeBusiness
	TypeCredit
)

func (t Type) String() string {
	switch t {
	case TypeChecking:
		return "checking"
	case TypeSavings:
		return "savings"
	case TypeBusiness:
		return "business"
	case TypeCredit:
		return "credit"
	}
	return "unknown"
}

// Account represents an account record. Version increments on every balance
// write and backs the optimistic concurrency check in UpdateBalance.
type Account struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Type          Type
	AccountNumber string
	Currency      string
	Balance       decimal.Decimal
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Create is the input for creating a new account. Accounts always open with
// a zero balance; initial funding goes through the deposit path so it is
// ledgered.
type Create struct {
	OwnerID       uuid.UUID
	Name          string
	Type          Type
	AccountNumber string
	Currency      string
}

// Filter specifies pagination for listing accounts.
type Filter struct {
	Limit  int
	Offset int
}

// Table defines the account storage operations.
//
//go:generate mockery --name Table --output mock_Table.go
type Table interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	// FindByIDForUpdate locks the account row for the lifetime of the
	// surrounding transaction. Only meaningful on a transaction executor.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByNumber(ctx context.Context, accountNumber string) (*Account, error)
	// FindPrimaryForOwner resolves a user-id transfer destination to the
	// owner's oldest account.
	FindPrimaryForOwner(ctx context.Context, ownerID uuid.UUID) (*Account, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filter *Filter) ([]*Account, error)
	// List pages through every account, for reconciliation sweeps.
	List(ctx context.Context, filter *Filter) ([]*Account, error)
	Insert(ctx context.Context, create *Create) (*Account, error)
	// UpdateBalance writes a new balance if and only if the stored version
	// still equals expectedVersion. A stale version yields a conflict and
	// the caller must re-read and retry the whole operation.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal, expectedVersion int64) (*Account, error)
}
