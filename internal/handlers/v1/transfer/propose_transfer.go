package transfer

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harbor-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/harbor-networks/ledger-server/internal/logging"
	"github.com/harbor-networks/ledger-server/internal/service"
)

// ProposeTransferInput is the Huma input for proposing a transfer.
type ProposeTransferInput struct {
	Body TransferBody
}

// ProposeTransferResponseBody is the response body for a proposed transfer.
type ProposeTransferResponseBody struct {
	ProposalID string `json:"proposalID" doc:"Identifier to pass to the confirm endpoint"`
	ExpiresAt  string `json:"expiresAt" format:"date-time" doc:"Time after which the proposal can no longer be confirmed"`
}

// ProposeTransferOutput is the Huma output for proposing a transfer.
type ProposeTransferOutput struct {
	Body ProposeTransferResponseBody
}

// transferProposer is the interface for proposing transfers.
type transferProposer interface {
	ProposeTransfer(ctx context.Context, req service.TransferRequest) (*service.Proposal, error)
}

// ProposeTransferHandler handles POST /v1/transfer/propose.
type ProposeTransferHandler struct {
	TransferService transferProposer
}

// NewProposeTransferHandler creates a new ProposeTransferHandler.
func NewProposeTransferHandler(svc transferProposer) *ProposeTransferHandler {
	return &ProposeTransferHandler{TransferService: svc}
}

// Register registers the propose transfer endpoint with the Huma API.
func (h *ProposeTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "propose-transfer",
		Method:        http.MethodPost,
		Path:          "/v1/transfer/propose",
		Summary:       "Propose a transfer",
		Description:   "Validates and stores a transfer with no side effects. Required for high-value and cross-user transfers; confirm it to execute.",
		Tags:          []string{"Transfers"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *ProposeTransferHandler) handle(ctx context.Context, input *ProposeTransferInput) (*ProposeTransferOutput, error) {
	logData := logging.GetLogData(ctx)

	req, err := parseTransferBody(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("proposeTransferMs")
	}
	proposal, err := h.TransferService.ProposeTransfer(ctx, req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to propose transfer")
	}

	if logData != nil {
		logData.AddData("proposalID", proposal.ID.String())
	}

	return &ProposeTransferOutput{
		Body: ProposeTransferResponseBody{
			ProposalID: proposal.ID.String(),
			ExpiresAt:  proposal.ExpiresAt.Format(time.RFC3339),
		},
	}, nil
}
