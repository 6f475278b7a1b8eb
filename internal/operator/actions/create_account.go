package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/account"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

// CreateAccount opens an account. A positive initial deposit is applied
// through the regular deposit path inside the same transaction, so the
// opening balance is ledgered like any other credit.
type CreateAccount struct {
	OwnerID        uuid.UUID
	Name           string
	Type           account.Type
	Currency       string
	AccountNumber  string
	InitialDeposit decimal.Decimal

	Account      *account.Account
	InitialEntry *ledger.Entry

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.Name == "" {
		return fault.Validationf("account name is required")
	}
	if c.InitialDeposit.IsNegative() {
		return fault.Validationf("initial deposit cannot be negative, got %s", c.InitialDeposit)
	}

	created, err := writer.Accounts.Insert(ctx, &account.Create{
		OwnerID:       c.OwnerID,
		Name:          c.Name,
		Type:          c.Type,
		AccountNumber: c.AccountNumber,
		Currency:      c.Currency,
	})
	if err != nil {
		return err
	}
	c.Account = created

	if !c.InitialDeposit.IsPositive() {
		return nil
	}

	deposit := Deposit{
		AccountID:   created.ID,
		Amount:      c.InitialDeposit,
		Description: "Initial deposit",
	}
	if err := deposit.Perform(ctx, writer); err != nil {
		return err
	}

	c.InitialEntry = deposit.Result.Entries[0]
	c.Account, err = writer.Accounts.FindByID(ctx, created.ID)
	return err
}
