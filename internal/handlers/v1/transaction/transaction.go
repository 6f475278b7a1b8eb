package transaction

import (
	"time"

	"github.com/harbor-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Account UUID"`
	Seq             int64  `json:"seq" doc:"Per-account monotonic sequence"`
	Amount          string `json:"amount" doc:"Signed decimal amount, positive credits the account"`
	Type            string `json:"type" doc:"Transaction type"`
	Category        string `json:"category" doc:"Reporting category"`
	Description     string `json:"description" doc:"Free-text description"`
	CounterpartyRef string `json:"counterpartyRef,omitempty" doc:"Other side of the transaction, when known"`
	CorrelationID   string `json:"correlationID,omitempty" doc:"Shared id linking the two legs of a transfer"`
	Status          string `json:"status" doc:"pending, completed, or failed"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

// FromService converts a service-layer transaction to the API model.
func FromService(tx service.Transaction) Transaction {
	converted := Transaction{
		ID:              tx.ID.String(),
		AccountID:       tx.AccountID.String(),
		Seq:             tx.Seq,
		Amount:          tx.Amount.String(),
		Type:            tx.Type.String(),
		Category:        tx.Category.String(),
		Description:     tx.Description,
		CounterpartyRef: tx.CounterpartyRef,
		Status:          tx.Status.String(),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CorrelationID.Valid {
		converted.CorrelationID = tx.CorrelationID.UUID.String()
	}
	return converted
}
