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

// PayBillBody is the request body for a bill payment.
type PayBillBody struct {
	Provider           string `json:"provider" required:"true" doc:"Billing provider name"`
	ProviderAccountRef string `json:"providerAccountRef,omitempty" doc:"Customer reference at the provider"`
	Amount             string `json:"amount" required:"true" doc:"Positive decimal amount to pay"`
	Recurring          bool   `json:"recurring,omitempty" doc:"True when this is a recurring payment"`
	IdempotencyKey     string `json:"idempotencyKey,omitempty" doc:"Client-supplied key making the request safe to retry"`
}

// PayBillInput is the Huma input for a bill payment.
type PayBillInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body PayBillBody
}

// PayBillOutput is the Huma output for a bill payment.
type PayBillOutput struct {
	Body MutationResponseBody
}

// billPayer is the interface for executing bill payments.
type billPayer interface {
	ExecutePayBill(ctx context.Context, accountID uuid.UUID, provider, providerAccountRef string, amount decimal.Decimal, recurring bool, idempotencyKey string) (*service.MutationResult, error)
}

// PayBillHandler handles POST /v1/account/{id}/paybill.
type PayBillHandler struct {
	TransferService billPayer
}

// NewPayBillHandler creates a new PayBillHandler.
func NewPayBillHandler(svc billPayer) *PayBillHandler {
	return &PayBillHandler{TransferService: svc}
}

// Register registers the pay bill endpoint with the Huma API.
func (h *PayBillHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pay-bill",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/paybill",
		Summary:     "Pay a bill",
		Description: "Debits the account for a provider bill with the same atomicity guarantees as a withdrawal.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func parsePayBillInput(input *PayBillInput) (uuid.UUID, decimal.Decimal, error) {
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

func (h *PayBillHandler) handle(ctx context.Context, input *PayBillInput) (*PayBillOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, amount, err := parsePayBillInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("payBillMs")
	}
	result, err := h.TransferService.ExecutePayBill(ctx, accountID, input.Body.Provider, input.Body.ProviderAccountRef, amount, input.Body.Recurring, input.Body.IdempotencyKey)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to pay bill")
	}

	if logData != nil {
		logData.AddData("replayed", result.Replayed)
	}

	return &PayBillOutput{Body: mutationResponseFromService(result)}, nil
}
