package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/storage/account"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeChecking AccountType = iota
	AccountTypeSavings
	AccountTypeBusiness
	AccountTypeCredit
)

// Account represents an account in the service layer.
type Account struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Type          AccountType
	AccountNumber string
	Currency      string
	Balance       decimal.Decimal
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountTypeToStorage(t AccountType) account.Type {
	return account.Type(t)
}

func accountTypeFromStorage(t account.Type) AccountType {
	return AccountType(t)
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Name:          row.Name,
		Type:          accountTypeFromStorage(row.Type),
		AccountNumber: row.AccountNumber,
		Currency:      row.Currency,
		Balance:       row.Balance,
		Version:       row.Version,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
