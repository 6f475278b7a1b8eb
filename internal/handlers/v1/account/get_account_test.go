package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/service"
)

type mockAccountGetter struct {
	mock.Mock
}

func (m *mockAccountGetter) GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, id)
	acct, _ := args.Get(0).(*service.Account)
	return acct, args.Error(1)
}

func TestHTTP_GetAccount_Success(t *testing.T) {
	acct := makeServiceAccount(uuid.Must(uuid.NewV4()), "250.00")

	mockSvc := new(mockAccountGetter)
	mockSvc.On("GetAccount", mock.Anything, acct.ID).Return(acct, nil)

	_, api := humatest.New(t)
	NewGetAccountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/account/" + acct.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, acct.ID.String(), body.ID)
	assert.Equal(t, acct.OwnerID.String(), body.OwnerID)
	assert.Equal(t, "250.00", body.Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAccountGetter)
	mockSvc.On("GetAccount", mock.Anything, id).
		Return((*service.Account)(nil), fault.NotFoundf("account %v not found", id))

	_, api := humatest.New(t)
	NewGetAccountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/account/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_InvalidID(t *testing.T) {
	mockSvc := new(mockAccountGetter)

	_, api := humatest.New(t)
	NewGetAccountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/account/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccount")
}
