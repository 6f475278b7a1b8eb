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

// WithdrawBody is the request body for a withdrawal.
type WithdrawBody struct {
	Amount         string `json:"amount" required:"true" doc:"Positive decimal amount to debit"`
	IdempotencyKey string `json:"idempotencyKey,omitempty" doc:"Client-supplied key making the request safe to retry"`
}

// WithdrawInput is the Huma input for a withdrawal.
type WithdrawInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body WithdrawBody
}

// WithdrawOutput is the Huma output for a withdrawal.
type WithdrawOutput struct {
	Body MutationResponseBody
}

// withdrawalExecutor is the interface for executing withdrawals.
type withdrawalExecutor interface {
	ExecuteWithdrawal(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*service.MutationResult, error)
}

// WithdrawHandler handles POST /v1/account/{id}/withdraw.
type WithdrawHandler struct {
	TransferService withdrawalExecutor
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(svc withdrawalExecutor) *WithdrawHandler {
	return &WithdrawHandler{TransferService: svc}
}

// Register registers the withdraw endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/withdraw",
		Summary:     "Withdraw funds",
		Description: "Debits the account and records a withdrawal entry in one atomic operation. Fails without side effects when funds are insufficient.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func parseWithdrawInput(input *WithdrawInput) (uuid.UUID, decimal.Decimal, error) {
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

func (h *WithdrawHandler) handle(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, amount, err := parseWithdrawInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("withdrawMs")
	}
	result, err := h.TransferService.ExecuteWithdrawal(ctx, accountID, amount, input.Body.IdempotencyKey)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to withdraw")
	}

	if logData != nil {
		logData.AddData("replayed", result.Replayed)
	}

	return &WithdrawOutput{Body: mutationResponseFromService(result)}, nil
}
