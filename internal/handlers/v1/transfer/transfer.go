// Package transfer exposes the balance-affecting endpoints: deposits,
// withdrawals, bill payments, and internal or external transfers including
// the propose/confirm flow for high-value and cross-user moves.
package transfer

import (
	"github.com/harbor-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/harbor-networks/ledger-server/internal/service"
)

// MutationResponseBody is the shared response body for every operation that
// moves money. Replayed is true when an idempotency key matched a previous
// request and the stored result was returned instead of re-executing.
type MutationResponseBody struct {
	Transactions []transaction.Transaction `json:"transactions" doc:"Ledger entries written by this operation"`
	NewBalance   string                    `json:"newBalance" doc:"Source account balance after the operation"`
	Replayed     bool                      `json:"replayed" doc:"True when an idempotency key replayed a stored result"`
}

func mutationResponseFromService(result *service.MutationResult) MutationResponseBody {
	body := MutationResponseBody{
		Transactions: make([]transaction.Transaction, len(result.Transactions)),
		NewBalance:   result.NewBalance.String(),
		Replayed:     result.Replayed,
	}
	for i, tx := range result.Transactions {
		body.Transactions[i] = transaction.FromService(tx)
	}
	return body
}
