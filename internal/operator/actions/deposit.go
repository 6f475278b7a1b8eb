package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/category"
	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

type Deposit struct {
	AccountID      uuid.UUID
	Amount         decimal.Decimal
	Method         string
	Description    string
	IdempotencyKey string

	Result Result

	IAction
}

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	if !d.Amount.IsPositive() {
		return fault.Validationf("deposit amount must be positive, got %s", d.Amount)
	}

	replayed, err := findReplay(ctx, writer, d.IdempotencyKey, opDeposit)
	if err != nil {
		return err
	}
	if replayed != nil {
		d.Result = *replayed
		return nil
	}

	acct, err := writer.Accounts.FindByIDForUpdate(ctx, d.AccountID)
	if err != nil {
		return err
	}

	description := d.Description
	if description == "" {
		description = "Deposit"
		if d.Method != "" {
			description = "Deposit via " + d.Method
		}
	}

	entry, err := writer.Ledger.Append(ctx, &ledger.EntryCreate{
		AccountID:   acct.ID,
		Amount:      d.Amount,
		Type:        ledger.TypeDeposit,
		Category:    category.Classify(description, ledger.TypeDeposit),
		Description: description,
		Status:      ledger.StatusCompleted,
	})
	if err != nil {
		return err
	}

	updated, err := writer.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Add(d.Amount), acct.Version)
	if err != nil {
		return err
	}

	d.Result = Result{
		Entries:    []*ledger.Entry{entry},
		NewBalance: updated.Balance,
	}
	return saveResult(ctx, writer, d.IdempotencyKey, opDeposit, &d.Result)
}
