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

type Withdraw struct {
	AccountID      uuid.UUID
	Amount         decimal.Decimal
	Description    string
	IdempotencyKey string

	Result Result

	IAction
}

func (w *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	if !w.Amount.IsPositive() {
		return fault.Validationf("withdrawal amount must be positive, got %s", w.Amount)
	}

	replayed, err := findReplay(ctx, writer, w.IdempotencyKey, opWithdrawal)
	if err != nil {
		return err
	}
	if replayed != nil {
		w.Result = *replayed
		return nil
	}

	acct, err := writer.Accounts.FindByIDForUpdate(ctx, w.AccountID)
	if err != nil {
		return err
	}

	if w.Amount.GreaterThan(acct.Balance) {
		return fault.InsufficientFundsf("withdrawal of %s exceeds balance %s", w.Amount, acct.Balance)
	}

	description := w.Description
	if description == "" {
		description = "Withdrawal"
	}

	entry, err := writer.Ledger.Append(ctx, &ledger.EntryCreate{
		AccountID:   acct.ID,
		Amount:      w.Amount.Neg(),
		Type:        ledger.TypeWithdrawal,
		Category:    category.Classify(description, ledger.TypeWithdrawal),
		Description: description,
		Status:      ledger.StatusCompleted,
	})
	if err != nil {
		return err
	}

	updated, err := writer.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Sub(w.Amount), acct.Version)
	if err != nil {
		return err
	}

	w.Result = Result{
		Entries:    []*ledger.Entry{entry},
		NewBalance: updated.Balance,
	}
	return saveResult(ctx, writer, w.IdempotencyKey, opWithdrawal, &w.Result)
}
