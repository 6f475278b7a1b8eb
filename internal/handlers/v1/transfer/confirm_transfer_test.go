package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/service"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

type mockTransferProposer struct {
	mock.Mock
}

func (m *mockTransferProposer) ProposeTransfer(ctx context.Context, req service.TransferRequest) (*service.Proposal, error) {
	args := m.Called(ctx, req)
	proposal, _ := args.Get(0).(*service.Proposal)
	return proposal, args.Error(1)
}

type mockTransferConfirmer struct {
	mock.Mock
}

func (m *mockTransferConfirmer) ConfirmTransfer(ctx context.Context, proposalID uuid.UUID) (*service.MutationResult, error) {
	args := m.Called(ctx, proposalID)
	result, _ := args.Get(0).(*service.MutationResult)
	return result, args.Error(1)
}

func TestHTTP_ProposeTransfer_Created(t *testing.T) {
	proposalID := uuid.Must(uuid.NewV4())
	expiresAt := time.Date(2026, 6, 1, 12, 10, 0, 0, time.UTC)

	mockSvc := new(mockTransferProposer)
	mockSvc.On("ProposeTransfer", mock.Anything, mock.Anything).
		Return(&service.Proposal{ID: proposalID, ExpiresAt: expiresAt}, nil)

	_, api := humatest.New(t)
	NewProposeTransferHandler(mockSvc).Register(api)

	resp := api.Post("/v1/transfer/propose", TransferBody{
		SourceAccountID:          uuid.Must(uuid.NewV4()).String(),
		DestinationAccountNumber: "000011112222",
		Amount:                   "25000.00",
		RequestedBy:              uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body ProposeTransferResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, proposalID.String(), body.ProposalID)
	assert.Equal(t, expiresAt.Format(time.RFC3339), body.ExpiresAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ProposeTransfer_UnknownSource(t *testing.T) {
	mockSvc := new(mockTransferProposer)
	mockSvc.On("ProposeTransfer", mock.Anything, mock.Anything).
		Return((*service.Proposal)(nil), fault.NotFoundf("source account not found"))

	_, api := humatest.New(t)
	NewProposeTransferHandler(mockSvc).Register(api)

	resp := api.Post("/v1/transfer/propose", TransferBody{
		SourceAccountID:          uuid.Must(uuid.NewV4()).String(),
		DestinationAccountNumber: "000011112222",
		Amount:                   "25000.00",
		RequestedBy:              uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ConfirmTransfer_Success(t *testing.T) {
	proposalID := uuid.Must(uuid.NewV4())
	sourceID := uuid.Must(uuid.NewV4())
	result := makeMutationResult(sourceID, ledger.TypeTransferOut, "-25000.00", "5000.00")

	mockSvc := new(mockTransferConfirmer)
	mockSvc.On("ConfirmTransfer", mock.Anything, proposalID).Return(result, nil)

	_, api := humatest.New(t)
	NewConfirmTransferHandler(mockSvc).Register(api)

	resp := api.Post("/v1/transfer/confirm", ConfirmTransferBody{ProposalID: proposalID.String()})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MutationResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "5000.00", body.NewBalance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ConfirmTransfer_UnknownProposal(t *testing.T) {
	proposalID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransferConfirmer)
	mockSvc.On("ConfirmTransfer", mock.Anything, proposalID).
		Return((*service.MutationResult)(nil), fault.NotFoundf("proposal %v not found", proposalID))

	_, api := humatest.New(t)
	NewConfirmTransferHandler(mockSvc).Register(api)

	resp := api.Post("/v1/transfer/confirm", ConfirmTransferBody{ProposalID: proposalID.String()})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ConfirmTransfer_InvalidProposalID(t *testing.T) {
	mockSvc := new(mockTransferConfirmer)

	_, api := humatest.New(t)
	NewConfirmTransferHandler(mockSvc).Register(api)

	resp := api.Post("/v1/transfer/confirm", ConfirmTransferBody{ProposalID: "nope"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ConfirmTransfer")
}
