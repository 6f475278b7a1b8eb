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

	"github.com/harbor-networks/ledger-server/internal/service"
)

type mockAccountLister struct {
	mock.Mock
}

func (m *mockAccountLister) ListAccountsForOwner(ctx context.Context, ownerID uuid.UUID, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, ownerID, cursor)
	accounts, _ := args.Get(0).([]service.Account)
	next, _ := args.Get(1).(*service.AccountCursor)
	return accounts, next, args.Error(2)
}

func TestHTTP_ListAccounts_SinglePage(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	acct := makeServiceAccount(ownerID, "250.00")

	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccountsForOwner", mock.Anything, ownerID, (*service.AccountCursor)(nil)).
		Return([]service.Account{*acct}, (*service.AccountCursor)(nil), nil)

	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Get("/v1/accounts?ownerID=" + ownerID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 1)
	assert.Equal(t, acct.ID.String(), body.Accounts[0].ID)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_HasNextPage(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	acct := makeServiceAccount(ownerID, "250.00")

	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccountsForOwner", mock.Anything, ownerID, mock.MatchedBy(func(c *service.AccountCursor) bool {
		return c != nil && c.Position == 0 && c.Limit == 2
	})).Return([]service.Account{*acct, *acct}, &service.AccountCursor{Position: 2, Limit: 2}, nil)

	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Get("/v1/accounts?ownerID=" + ownerID.String() + "&limit=2")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 2)
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 2, body.NextCursor.Position)
	assert.Equal(t, 2, body.NextCursor.Limit)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_MissingOwnerID(t *testing.T) {
	mockSvc := new(mockAccountLister)

	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Get("/v1/accounts")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListAccountsForOwner")
}
