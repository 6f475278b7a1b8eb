package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harbor-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/harbor-networks/ledger-server/internal/service"
)

// ReconcileInput is the Huma input for reconciling an account.
type ReconcileInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

// ReconcileResponseBody reports stored versus derived balance.
type ReconcileResponseBody struct {
	AccountID      string `json:"accountID" doc:"Account UUID"`
	StoredBalance  string `json:"storedBalance" doc:"Balance held on the account row"`
	DerivedBalance string `json:"derivedBalance" doc:"Sum of all completed ledger entries"`
	Consistent     bool   `json:"consistent" doc:"True when stored and derived balances agree"`
}

// ReconcileOutput is the Huma output for reconciling an account.
type ReconcileOutput struct {
	Body ReconcileResponseBody
}

// balanceRecomputer is the interface for recomputing a balance from history.
type balanceRecomputer interface {
	Recompute(ctx context.Context, accountID uuid.UUID) (*service.Reconciliation, error)
}

// ReconcileHandler handles GET /v1/account/{id}/reconcile.
type ReconcileHandler struct {
	ProjectorService balanceRecomputer
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(svc balanceRecomputer) *ReconcileHandler {
	return &ReconcileHandler{ProjectorService: svc}
}

// Register registers the reconcile endpoint with the Huma API.
func (h *ReconcileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reconcile-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}/reconcile",
		Summary:     "Reconcile an account",
		Description: "Recomputes the balance from ledger history and compares it to the stored value.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ReconcileHandler) handle(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	reconciliation, err := h.ProjectorService.Recompute(ctx, id)
	if err != nil {
		return nil, httperr.FromFault(err, "failed to reconcile account")
	}

	return &ReconcileOutput{Body: ReconcileResponseBody{
		AccountID:      reconciliation.AccountID.String(),
		StoredBalance:  reconciliation.StoredBalance.String(),
		DerivedBalance: reconciliation.DerivedBalance.String(),
		Consistent:     reconciliation.Consistent,
	}}, nil
}
