package account

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

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	OwnerID        string `json:"ownerID" required:"true" doc:"Owning user UUID"`
	Name           string `json:"name" minLength:"1" required:"true" doc:"Account name"`
	Type           string `json:"type" required:"true" doc:"Account type: checking, savings, business, or credit"`
	Currency       string `json:"currency,omitempty" doc:"ISO currency code, defaults to USD"`
	InitialDeposit string `json:"initialDeposit,omitempty" doc:"Non-negative opening deposit, ledgered as a deposit transaction"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, ownerID uuid.UUID, name string, accountType service.AccountType, currency string, initialDeposit decimal.Decimal) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account. A positive initial deposit is recorded as the account's first ledger entry.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (ownerID uuid.UUID, accountType service.AccountType, initialDeposit decimal.Decimal, err error) {
	ownerID, err = uuid.FromString(input.Body.OwnerID)
	if err != nil {
		return ownerID, accountType, initialDeposit, huma.NewError(http.StatusBadRequest, "invalid ownerID", err)
	}

	accountType, ok := TypeFromString(input.Body.Type)
	if !ok {
		return ownerID, accountType, initialDeposit, huma.NewError(http.StatusBadRequest, "type must be checking, savings, business, or credit")
	}

	depositStr := input.Body.InitialDeposit
	if depositStr == "" {
		depositStr = "0"
	}
	initialDeposit, err = decimal.NewFromString(depositStr)
	if err != nil {
		return ownerID, accountType, initialDeposit, huma.NewError(http.StatusBadRequest, "invalid initialDeposit", err)
	}
	if initialDeposit.IsNegative() {
		return ownerID, accountType, initialDeposit, huma.NewError(http.StatusBadRequest, "initialDeposit cannot be negative")
	}

	return ownerID, accountType, initialDeposit, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, accountType, initialDeposit, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	acct, err := h.AccountService.CreateAccount(ctx, ownerID, input.Body.Name, accountType, input.Body.Currency, initialDeposit)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromFault(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", acct.ID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   fromService(acct),
	}, nil
}
