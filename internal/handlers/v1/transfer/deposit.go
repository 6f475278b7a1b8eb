package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/harbor-networks/ledger-server/internal/logging"
	"github.com/harbor-networks/ledger-server/internal/service"
)

// DepositBody is the request body for a deposit.
type DepositBody struct {
	Amount         string `json:"amount" required:"true" doc:"Positive decimal amount to credit"`
	Method         string `json:"method,omitempty" doc:"Funding method, for example cash or ach"`
	IdempotencyKey string `json:"idempotencyKey,omitempty" doc:"Client-supplied key making the request safe to retry"`
}

// DepositInput is the Huma input for a deposit.
type DepositInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body DepositBody
}

// DepositOutput is the Huma output for a deposit.
type DepositOutput struct {
	Body MutationResponseBody
}

// depositExecutor is the interface for executing deposits.
type depositExecutor interface {
	ExecuteDeposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, method, idempotencyKey string) (*service.MutationResult, error)
}

// DepositHandler handles POST /v1/account/{id}/deposit.
type DepositHandler struct {
	TransferService depositExecutor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(svc depositExecutor) *DepositHandler {
	return &DepositHandler{TransferService: svc}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/deposit",
		Summary:     "Deposit funds",
		Description: "Credits the account and records a deposit entry in one atomic operation.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func parseDepositInput(input *DepositInput) (uuid.UUID, decimal.Decimal, error) {
	accountID, err := uuid.FromString(input.ID)
	if err != nil {
		return accountID, decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return accountID, decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return accountID, amount, nil
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, amount, err := parseDepositInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("depositMs")
	}
	result, err := h.TransferService.ExecuteDeposit(ctx, accountID, amount, input.Body.Method, input.Body.IdempotencyKey)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to deposit")
	}

	if logData != nil {
		logData.AddData("replayed", result.Replayed)
	}

	return &DepositOutput{Body: mutationResponseFromService(result)}, nil
}
