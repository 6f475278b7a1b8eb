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

// TransferBody is the request body for a transfer. Exactly one of
// destinationAccountNumber or destinationUserID must be set.
type TransferBody struct {
	SourceAccountID          string `json:"sourceAccountID" required:"true" doc:"Source account UUID"`
	DestinationAccountNumber string `json:"destinationAccountNumber,omitempty" doc:"Destination account number, internal or external"`
	DestinationUserID        string `json:"destinationUserID,omitempty" doc:"Destination user UUID, resolved to their primary account"`
	DestinationName          string `json:"destinationName,omitempty" doc:"Display name recorded on the debit leg"`
	Amount                   string `json:"amount" required:"true" doc:"Positive decimal amount to transfer"`
	Purpose                  string `json:"purpose,omitempty" doc:"Free-text purpose recorded on both legs"`
	IdempotencyKey           string `json:"idempotencyKey,omitempty" doc:"Client-supplied key making the request safe to retry"`
	RequestedBy              string `json:"requestedBy" required:"true" doc:"UUID of the user initiating the transfer"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	Body TransferBody
}

// TransferOutput is the Huma output for a transfer.
type TransferOutput struct {
	Body MutationResponseBody
}

// transferExecutor is the interface for executing transfers.
type transferExecutor interface {
	ExecuteTransfer(ctx context.Context, req service.TransferRequest) (*service.MutationResult, error)
}

// ExecuteTransferHandler handles POST /v1/transfer.
type ExecuteTransferHandler struct {
	TransferService transferExecutor
}

// NewExecuteTransferHandler creates a new ExecuteTransferHandler.
func NewExecuteTransferHandler(svc transferExecutor) *ExecuteTransferHandler {
	return &ExecuteTransferHandler{TransferService: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *ExecuteTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "execute-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer funds",
		Description: "Moves funds between accounts atomically. High-value and cross-user transfers must be proposed and confirmed instead.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

// parseTransferBody converts the API body into a service request. Shared with
// the propose endpoint, which accepts the same shape.
func parseTransferBody(body TransferBody) (service.TransferRequest, error) {
	var req service.TransferRequest

	sourceID, err := uuid.FromString(body.SourceAccountID)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid sourceAccountID", err)
	}

	requestedBy, err := uuid.FromString(body.RequestedBy)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid requestedBy", err)
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var destUserID uuid.NullUUID
	if body.DestinationUserID != "" {
		parsed, parseErr := uuid.FromString(body.DestinationUserID)
		if parseErr != nil {
			return req, huma.NewError(http.StatusBadRequest, "invalid destinationUserID", parseErr)
		}
		destUserID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	return service.TransferRequest{
		SourceAccountID:          sourceID,
		DestinationAccountNumber: body.DestinationAccountNumber,
		DestinationUserID:        destUserID,
		DestinationName:          body.DestinationName,
		Amount:                   amount,
		Purpose:                  body.Purpose,
		IdempotencyKey:           body.IdempotencyKey,
		RequestedBy:              requestedBy,
	}, nil
}

func (h *ExecuteTransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	req, err := parseTransferBody(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("executeTransferMs")
	}
	result, err := h.TransferService.ExecuteTransfer(ctx, req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to transfer")
	}

	if logData != nil {
		logData.AddData("replayed", result.Replayed)
	}

	return &TransferOutput{Body: mutationResponseFromService(result)}, nil
}
