package actions

import (
	"bytes"
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/category"
	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/account"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

// Destination identifies where a transfer goes: an account number or an
// internal user id, never both.
type Destination struct {
	AccountNumber string
	UserID        uuid.NullUUID
	DisplayName   string
}

// Transfer moves money between two accounts as one database transaction:
// debit leg, credit leg, and both balance writes commit together or not at
// all. An account number that resolves to no internal account becomes an
// outgoing debit held as pending until external settlement completes.
type Transfer struct {
	SourceAccountID uuid.UUID
	Destination     Destination
	Amount          decimal.Decimal
	Purpose         string
	IdempotencyKey  string
	RequestedBy     uuid.UUID

	Result Result

	IAction
}

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return fault.Validationf("transfer amount must be positive, got %s", t.Amount)
	}
	if t.Destination.AccountNumber == "" && !t.Destination.UserID.Valid {
		return fault.Validationf("transfer destination requires an account number or a user id")
	}
	if t.Destination.AccountNumber != "" && t.Destination.UserID.Valid {
		return fault.Validationf("transfer destination cannot name both an account number and a user id")
	}

	replayed, err := findReplay(ctx, writer, t.IdempotencyKey, opTransfer)
	if err != nil {
		return err
	}
	if replayed != nil {
		t.Result = *replayed
		return nil
	}

	dest, err := t.resolveDestination(ctx, writer)
	if err != nil {
		if fault.IsNotFound(err) && t.Destination.AccountNumber != "" {
			// Unknown account numbers route to external settlement.
			return t.performExternal(ctx, writer)
		}
		return err
	}

	if dest.ID == t.SourceAccountID {
		return fault.Validationf("cannot transfer to the same account")
	}

	source, dest, err := lockPair(ctx, writer, t.SourceAccountID, dest.ID)
	if err != nil {
		return err
	}

	if t.Amount.GreaterThan(source.Balance) {
		return fault.InsufficientFundsf("transfer of %s exceeds balance %s", t.Amount, source.Balance)
	}

	correlationID, err := uuid.NewV4()
	if err != nil {
		return err
	}

	purpose := t.Purpose
	if purpose == "" {
		purpose = "Transfer"
	}

	debitRef := dest.AccountNumber
	if t.Destination.DisplayName != "" {
		debitRef = t.Destination.DisplayName + " (" + dest.AccountNumber + ")"
	}

	debit, err := writer.Ledger.Append(ctx, &ledger.EntryCreate{
		AccountID:       source.ID,
		Amount:          t.Amount.Neg(),
		Type:            ledger.TypeTransferOut,
		Category:        category.Classify(purpose, ledger.TypeTransferOut),
		Description:     purpose,
		CounterpartyRef: debitRef,
		CorrelationID:   uuid.NullUUID{UUID: correlationID, Valid: true},
		Status:          ledger.StatusCompleted,
	})
	if err != nil {
		return err
	}

	credit, err := writer.Ledger.Append(ctx, &ledger.EntryCreate{
		AccountID:       dest.ID,
		Amount:          t.Amount,
		Type:            ledger.TypeTransferIn,
		Category:        category.Classify(purpose, ledger.TypeTransferIn),
		Description:     purpose,
		CounterpartyRef: source.AccountNumber,
		CorrelationID:   uuid.NullUUID{UUID: correlationID, Valid: true},
		Status:          ledger.StatusCompleted,
	})
	if err != nil {
		return err
	}

	updatedSource, err := writer.Accounts.UpdateBalance(ctx, source.ID, source.Balance.Sub(t.Amount), source.Version)
	if err != nil {
		return err
	}
	if _, err := writer.Accounts.UpdateBalance(ctx, dest.ID, dest.Balance.Add(t.Amount), dest.Version); err != nil {
		return err
	}

	t.Result = Result{
		Entries:    []*ledger.Entry{debit, credit},
		NewBalance: updatedSource.Balance,
	}
	return saveResult(ctx, writer, t.IdempotencyKey, opTransfer, &t.Result)
}

func (t *Transfer) resolveDestination(ctx context.Context, writer *storage.Writer) (*account.Account, error) {
	if t.Destination.UserID.Valid {
		return writer.Accounts.FindPrimaryForOwner(ctx, t.Destination.UserID.UUID)
	}
	return writer.Accounts.FindByNumber(ctx, t.Destination.AccountNumber)
}

// performExternal records the outgoing leg of a transfer to a destination
// outside this ledger. The entry stays pending and the balance untouched
// until external settlement completes, which is handled elsewhere.
func (t *Transfer) performExternal(ctx context.Context, writer *storage.Writer) error {
	source, err := writer.Accounts.FindByIDForUpdate(ctx, t.SourceAccountID)
	if err != nil {
		return err
	}

	if t.Amount.GreaterThan(source.Balance) {
		return fault.InsufficientFundsf("transfer of %s exceeds balance %s", t.Amount, source.Balance)
	}

	correlationID, err := uuid.NewV4()
	if err != nil {
		return err
	}

	purpose := t.Purpose
	if purpose == "" {
		purpose = "External transfer"
	}

	entry, err := writer.Ledger.Append(ctx, &ledger.EntryCreate{
		AccountID:       source.ID,
		Amount:          t.Amount.Neg(),
		Type:            ledger.TypeTransferOut,
		Category:        category.Classify(purpose, ledger.TypeTransferOut),
		Description:     purpose,
		CounterpartyRef: "external-settlement:" + t.Destination.AccountNumber,
		CorrelationID:   uuid.NullUUID{UUID: correlationID, Valid: true},
		Status:          ledger.StatusPending,
	})
	if err != nil {
		return err
	}

	t.Result = Result{
		Entries:    []*ledger.Entry{entry},
		NewBalance: source.Balance,
	}
	return saveResult(ctx, writer, t.IdempotencyKey, opTransfer, &t.Result)
}

// lockPair locks both account rows in ascending id order so two transfers
// crossing in opposite directions cannot deadlock.
func lockPair(ctx context.Context, writer *storage.Writer, sourceID, destID uuid.UUID) (source, dest *account.Account, err error) {
	first, second := sourceID, destID
	if bytes.Compare(first[:], second[:]) > 0 {
		first, second = second, first
	}

	firstAcct, err := writer.Accounts.FindByIDForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondAcct, err := writer.Accounts.FindByIDForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	if firstAcct.ID == sourceID {
		return firstAcct, secondAcct, nil
	}
	return secondAcct, firstAcct, nil
}
