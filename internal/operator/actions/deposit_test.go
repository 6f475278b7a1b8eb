package actions

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/account"
	"github.com/harbor-networks/ledger-server/internal/storage/idempotency"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

func newTestWriter(t *testing.T) (*storage.Writer, *account.MockTable, *ledger.MockTable, *idempotency.MockTable) {
	t.Helper()
	accounts := account.NewMockTable(t)
	entries := ledger.NewMockTable(t)
	keys := idempotency.NewMockTable(t)
	writer := &storage.Writer{
		Accounts:    accounts,
		Ledger:      entries,
		Idempotency: keys,
	}
	return writer, accounts, entries, keys
}

func makeAccount(balance string) *account.Account {
	return &account.Account{
		ID:            uuid.Must(uuid.NewV4()),
		OwnerID:       uuid.Must(uuid.NewV4()),
		Name:          "Checking",
		Type:          account.TypeChecking,
		AccountNumber: "000011112222",
		Currency:      "USD",
		Balance:       decimal.RequireFromString(balance),
		Version:       1,
	}
}

func decimalEq(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expected)
	})
}

func TestDeposit_Success(t *testing.T) {
	writer, accounts, entries, _ := newTestWriter(t)

	acct := makeAccount("100.00")
	amount := decimal.RequireFromString("25.50")

	appended := &ledger.Entry{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: acct.ID,
		Seq:       1,
		Amount:    amount,
		Type:      ledger.TypeDeposit,
		Category:  ledger.CategoryDeposit,
		Status:    ledger.StatusCompleted,
	}
	updated := *acct
	updated.Balance = decimal.RequireFromString("125.50")
	updated.Version = 2

	accounts.EXPECT().FindByIDForUpdate(mock.Anything, acct.ID).Return(acct, nil)
	entries.EXPECT().Append(mock.Anything, mock.MatchedBy(func(c *ledger.EntryCreate) bool {
		return c.AccountID == acct.ID &&
			c.Amount.Equal(amount) &&
			c.Type == ledger.TypeDeposit &&
			c.Status == ledger.StatusCompleted
	})).Return(appended, nil)
	accounts.EXPECT().UpdateBalance(mock.Anything, acct.ID, decimalEq(updated.Balance), acct.Version).
		Return(&updated, nil)

	action := &Deposit{AccountID: acct.ID, Amount: amount, Method: "cash"}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Len(t, action.Result.Entries, 1)
	assert.True(t, action.Result.NewBalance.Equal(updated.Balance))
	assert.False(t, action.Result.Replayed)
}

func TestDeposit_NonPositiveAmount(t *testing.T) {
	writer, _, _, _ := newTestWriter(t)

	action := &Deposit{AccountID: uuid.Must(uuid.NewV4()), Amount: decimal.Zero}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	assert.True(t, fault.IsValidation(err))
}

func TestDeposit_DefaultDescriptionUsesMethod(t *testing.T) {
	writer, accounts, entries, _ := newTestWriter(t)

	acct := makeAccount("0.00")
	amount := decimal.RequireFromString("10.00")
	updated := *acct
	updated.Balance = amount
	updated.Version = 2

	accounts.EXPECT().FindByIDForUpdate(mock.Anything, acct.ID).Return(acct, nil)
	entries.EXPECT().Append(mock.Anything, mock.MatchedBy(func(c *ledger.EntryCreate) bool {
		return c.Description == "Deposit via ach"
	})).Return(&ledger.Entry{AccountID: acct.ID, Amount: amount}, nil)
	accounts.EXPECT().UpdateBalance(mock.Anything, acct.ID, decimalEq(amount), acct.Version).
		Return(&updated, nil)

	action := &Deposit{AccountID: acct.ID, Amount: amount, Method: "ach"}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestDeposit_IdempotentReplay(t *testing.T) {
	writer, _, _, keys := newTestWriter(t)

	accountID := uuid.Must(uuid.NewV4())
	stored := Result{
		Entries:    []*ledger.Entry{{AccountID: accountID, Amount: decimal.RequireFromString("40.00")}},
		NewBalance: decimal.RequireFromString("140.00"),
	}
	payload, err := json.Marshal(&stored)
	assert.NoError(t, err)

	keys.EXPECT().Find(mock.Anything, "retry-1").Return(&idempotency.Record{
		Key:       "retry-1",
		Operation: opDeposit,
		Response:  payload,
	}, nil)

	action := &Deposit{
		AccountID:      accountID,
		Amount:         decimal.RequireFromString("40.00"),
		IdempotencyKey: "retry-1",
	}
	err = action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.True(t, action.Result.Replayed)
	assert.True(t, action.Result.NewBalance.Equal(stored.NewBalance))
	assert.Len(t, action.Result.Entries, 1)
}

func TestDeposit_IdempotencyKeyFromOtherOperation(t *testing.T) {
	writer, _, _, keys := newTestWriter(t)

	keys.EXPECT().Find(mock.Anything, "shared-key").Return(&idempotency.Record{
		Key:       "shared-key",
		Operation: opWithdrawal,
		Response:  []byte(`{}`),
	}, nil)

	action := &Deposit{
		AccountID:      uuid.Must(uuid.NewV4()),
		Amount:         decimal.RequireFromString("5.00"),
		IdempotencyKey: "shared-key",
	}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	assert.True(t, fault.IsValidation(err))
}

func TestDeposit_SavesResultUnderKey(t *testing.T) {
	writer, accounts, entries, keys := newTestWriter(t)

	acct := makeAccount("0.00")
	amount := decimal.RequireFromString("15.00")
	updated := *acct
	updated.Balance = amount
	updated.Version = 2

	keys.EXPECT().Find(mock.Anything, "dep-9").Return(nil, nil)
	accounts.EXPECT().FindByIDForUpdate(mock.Anything, acct.ID).Return(acct, nil)
	entries.EXPECT().Append(mock.Anything, mock.Anything).
		Return(&ledger.Entry{AccountID: acct.ID, Amount: amount}, nil)
	accounts.EXPECT().UpdateBalance(mock.Anything, acct.ID, decimalEq(amount), acct.Version).
		Return(&updated, nil)
	keys.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(r *idempotency.Record) bool {
		return r.Key == "dep-9" && r.Operation == opDeposit && len(r.Response) > 0
	})).Return(nil)

	action := &Deposit{AccountID: acct.ID, Amount: amount, IdempotencyKey: "dep-9"}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
}

// Two requests racing on one key can both miss the replay lookup; the
// loser's key insert comes back as a conflict, which retries into the
// replay path instead of double-applying.
func TestDeposit_DuplicateKeyRaceSurfacesConflict(t *testing.T) {
	writer, accounts, entries, keys := newTestWriter(t)

	acct := makeAccount("0.00")
	amount := decimal.RequireFromString("15.00")
	updated := *acct
	updated.Balance = amount
	updated.Version = 2

	keys.EXPECT().Find(mock.Anything, "dep-9").Return(nil, nil)
	accounts.EXPECT().FindByIDForUpdate(mock.Anything, acct.ID).Return(acct, nil)
	entries.EXPECT().Append(mock.Anything, mock.Anything).
		Return(&ledger.Entry{AccountID: acct.ID, Amount: amount}, nil)
	accounts.EXPECT().UpdateBalance(mock.Anything, acct.ID, decimalEq(amount), acct.Version).
		Return(&updated, nil)
	keys.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(fault.Conflictf("idempotency key %q already recorded", "dep-9"))

	action := &Deposit{AccountID: acct.ID, Amount: amount, IdempotencyKey: "dep-9"}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	assert.True(t, fault.IsConflict(err))
}
