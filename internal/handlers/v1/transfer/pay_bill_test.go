package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harbor-networks/ledger-server/internal/service"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

type mockBillPayer struct {
	mock.Mock
}

func (m *mockBillPayer) ExecutePayBill(ctx context.Context, accountID uuid.UUID, provider, providerAccountRef string, amount decimal.Decimal, recurring bool, idempotencyKey string) (*service.MutationResult, error) {
	args := m.Called(ctx, accountID, provider, providerAccountRef, amount, recurring, idempotencyKey)
	result, _ := args.Get(0).(*service.MutationResult)
	return result, args.Error(1)
}

func TestHTTP_PayBill_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	result := makeMutationResult(accountID, ledger.TypeBillPayment, "-45.00", "255.00")

	mockSvc := new(mockBillPayer)
	mockSvc.On("ExecutePayBill", mock.Anything, accountID, "City Electric", "ACC-42", decimalEq(decimal.RequireFromString("45.00")), false, "bill-1").
		Return(result, nil)

	_, api := humatest.New(t)
	NewPayBillHandler(mockSvc).Register(api)

	resp := api.Post("/v1/account/"+accountID.String()+"/paybill", PayBillBody{
		Provider:           "City Electric",
		ProviderAccountRef: "ACC-42",
		Amount:             "45.00",
		IdempotencyKey:     "bill-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MutationResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "bill_payment", body.Transactions[0].Type)
	assert.Equal(t, "255.00", body.NewBalance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_PayBill_RecurringPassedThrough(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	result := makeMutationResult(accountID, ledger.TypeRecurringPayment, "-9.99", "90.01")

	mockSvc := new(mockBillPayer)
	mockSvc.On("ExecutePayBill", mock.Anything, accountID, "StreamCo", "", mock.Anything, true, "").
		Return(result, nil)

	_, api := humatest.New(t)
	NewPayBillHandler(mockSvc).Register(api)

	resp := api.Post("/v1/account/"+accountID.String()+"/paybill", PayBillBody{
		Provider:  "StreamCo",
		Amount:    "9.99",
		Recurring: true,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_PayBill_MissingProviderRejected(t *testing.T) {
	mockSvc := new(mockBillPayer)

	_, api := humatest.New(t)
	NewPayBillHandler(mockSvc).Register(api)

	resp := api.Post("/v1/account/"+uuid.Must(uuid.NewV4()).String()+"/paybill", map[string]any{
		"amount": "45.00",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ExecutePayBill")
}
