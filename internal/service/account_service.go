package service

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/operator/actions"
	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/account"
)

const defaultAccountLimit = 20

// AccountService handles account business logic. Balance writes never happen
// here; only the transfer coordinator's actions mutate balances.
type AccountService struct {
	storage   *storage.Storage
	processor processor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, proc processor) *AccountService {
	return &AccountService{storage: store, processor: proc}
}

// CreateAccount opens an account for the owner. A positive initial deposit
// is ledgered through the deposit path in the same transaction.
func (s *AccountService) CreateAccount(ctx context.Context, ownerID uuid.UUID, name string, accountType AccountType, currency string, initialDeposit decimal.Decimal) (*Account, error) {
	if ownerID.IsNil() {
		return nil, fault.Validationf("account owner is required")
	}
	if currency == "" {
		currency = "USD"
	}

	accountNumber, err := generateAccountNumber()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{
		OwnerID:        ownerID,
		Name:           name,
		Type:           accountTypeToStorage(accountType),
		Currency:       currency,
		AccountNumber:  accountNumber,
		InitialDeposit: initialDeposit,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return accountFromStorage(action.Account), nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return accountFromStorage(row), nil
}

// ListAccountsForOwner returns a page of the owner's accounts using cursor
// pagination.
func (s *AccountService) ListAccountsForOwner(ctx context.Context, ownerID uuid.UUID, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &account.Filter{
		Limit:  limit,
		Offset: offset,
	}

	rows, err := s.storage.Accounts.ListForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = *accountFromStorage(row)
	}

	return converted, nextCursor, nil
}

// generateAccountNumber derives a 12-digit external identifier from random
// UUID bytes. Uniqueness is enforced by the accounts table constraint.
func generateAccountNumber() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint64(u.Bytes()[:8]) % 1_000_000_000_000
	return fmt.Sprintf("%012d", n), nil
}
