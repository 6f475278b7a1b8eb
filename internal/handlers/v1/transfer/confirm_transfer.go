package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harbor-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/harbor-networks/ledger-server/internal/logging"
	"github.com/harbor-networks/ledger-server/internal/service"
)

// ConfirmTransferBody is the request body for confirming a proposed transfer.
type ConfirmTransferBody struct {
	ProposalID string `json:"proposalID" required:"true" doc:"Identifier returned by the propose endpoint"`
}

// ConfirmTransferInput is the Huma input for confirming a transfer.
type ConfirmTransferInput struct {
	Body ConfirmTransferBody
}

// ConfirmTransferOutput is the Huma output for confirming a transfer.
type ConfirmTransferOutput struct {
	Body MutationResponseBody
}

// transferConfirmer is the interface for confirming transfers.
type transferConfirmer interface {
	ConfirmTransfer(ctx context.Context, proposalID uuid.UUID) (*service.MutationResult, error)
}

// ConfirmTransferHandler handles POST /v1/transfer/confirm.
type ConfirmTransferHandler struct {
	TransferService transferConfirmer
}

// NewConfirmTransferHandler creates a new ConfirmTransferHandler.
func NewConfirmTransferHandler(svc transferConfirmer) *ConfirmTransferHandler {
	return &ConfirmTransferHandler{TransferService: svc}
}

// Register registers the confirm transfer endpoint with the Huma API.
func (h *ConfirmTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "confirm-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer/confirm",
		Summary:     "Confirm a proposed transfer",
		Description: "Executes a previously proposed transfer. The proposal is consumed whether or not execution succeeds.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *ConfirmTransferHandler) handle(ctx context.Context, input *ConfirmTransferInput) (*ConfirmTransferOutput, error) {
	logData := logging.GetLogData(ctx)

	proposalID, err := uuid.FromString(input.Body.ProposalID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid proposalID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("confirmTransferMs")
	}
	result, err := h.TransferService.ConfirmTransfer(ctx, proposalID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to confirm transfer")
	}

	if logData != nil {
		logData.AddData("replayed", result.Replayed)
	}

	return &ConfirmTransferOutput{Body: mutationResponseFromService(result)}, nil
}
