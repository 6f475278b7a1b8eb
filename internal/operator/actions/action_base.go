package actions

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/idempotency"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Operation names recorded alongside idempotency keys. A key replayed
// against a different operation is rejected rather than served.
const (
	opDeposit    = "deposit"
	opWithdrawal = "withdrawal"
	opTransfer   = "transfer"
	opPayBill    = "pay_bill"
)

// Result is the outcome of a balance-affecting action: the ledger entries it
// appended and the mutated account's balance afterwards.
type Result struct {
	Entries    []*ledger.Entry `json:"entries"`
	NewBalance decimal.Decimal `json:"newBalance"`
	// Replayed is true when the result was served from the idempotency
	// store without re-applying the mutation.
	Replayed bool `json:"-"`
}

// findReplay looks up a previously stored result for the key. Returns nil
// when the key is empty or unseen.
func findReplay(ctx context.Context, writer *storage.Writer, key, operation string) (*Result, error) {
	if key == "" {
		return nil, nil
	}

	record, err := writer.Idempotency.Find(ctx, key)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	if record.Operation != operation {
		return nil, fault.Validationf("idempotency key already used by operation %q", record.Operation)
	}

	var result Result
	if err := json.Unmarshal(record.Response, &result); err != nil {
		return nil, err
	}
	result.Replayed = true
	return &result, nil
}

// saveResult records the result under the key so a retried request replays
// it. No-op when the caller supplied no key.
func saveResult(ctx context.Context, writer *storage.Writer, key, operation string, result *Result) error {
	if key == "" {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return writer.Idempotency.Insert(ctx, &idempotency.Record{
		Key:       key,
		Operation: operation,
		Response:  payload,
	})
}
