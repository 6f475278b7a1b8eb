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

// PayBill debits an account for a provider bill. Recurring payments carry a
// distinct ledger type but share the withdrawal atomicity contract.
type PayBill struct {
	AccountID          uuid.UUID
	Provider           string
	ProviderAccountRef string
	Amount             decimal.Decimal
	Recurring          bool
	IdempotencyKey     string

	Result Result

	IAction
}

func (p *PayBill) Perform(ctx context.Context, writer *storage.Writer) error {
	if !p.Amount.IsPositive() {
		return fault.Validationf("bill payment amount must be positive, got %s", p.Amount)
	}
	if p.Provider == "" {
		return fault.Validationf("bill payment requires a provider")
	}

	replayed, err := findReplay(ctx, writer, p.IdempotencyKey, opPayBill)
	if err != nil {
		return err
	}
	if replayed != nil {
		p.Result = *replayed
		return nil
	}

	acct, err := writer.Accounts.FindByIDForUpdate(ctx, p.AccountID)
	if err != nil {
		return err
	}

	if p.Amount.GreaterThan(acct.Balance) {
		return fault.InsufficientFundsf("bill payment of %s exceeds balance %s", p.Amount, acct.Balance)
	}

	entryType := ledger.TypeBillPayment
	if p.Recurring {
		entryType = ledger.TypeRecurringPayment
	}

	description := p.Provider + " bill payment"
	counterpartyRef := p.Provider
	if p.ProviderAccountRef != "" {
		counterpartyRef = p.Provider + "/" + p.ProviderAccountRef
	}

	entry, err := writer.Ledger.Append(ctx, &ledger.EntryCreate{
		AccountID:       acct.ID,
		Amount:          p.Amount.Neg(),
		Type:            entryType,
		Category:        category.Classify(description, entryType),
		Description:     description,
		CounterpartyRef: counterpartyRef,
		Status:          ledger.StatusCompleted,
	})
	if err != nil {
		return err
	}

	updated, err := writer.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Sub(p.Amount), acct.Version)
	if err != nil {
		return err
	}

	p.Result = Result{
		Entries:    []*ledger.Entry{entry},
		NewBalance: updated.Balance,
	}
	return saveResult(ctx, writer, p.IdempotencyKey, opPayBill, &p.Result)
}
