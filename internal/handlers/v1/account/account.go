package account

import (
	"time"

	"github.com/harbor-networks/ledger-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID            string `json:"id" doc:"Account UUID"`
	OwnerID       string `json:"ownerID" doc:"Owning user UUID"`
	Name          string `json:"name" doc:"Account name"`
	Type          string `json:"type" doc:"Account type: checking, savings, business, or credit"`
	AccountNumber string `json:"accountNumber" doc:"External account number"`
	Currency      string `json:"currency" doc:"ISO currency code"`
	Balance       string `json:"balance" doc:"Decimal balance"`
	Version       int64  `json:"version" doc:"Optimistic concurrency version"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

var typeNames = map[service.AccountType]string{
	service.AccountTypeChecking: "checking",
	service.AccountTypeSavings:  "savings",
	service.AccountTypeBusiness: "business",
	service.AccountTypeCredit:   "credit",
}

// TypeFromString parses an account type name from the API.
func TypeFromString(s string) (service.AccountType, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

func fromService(acct *service.Account) Account {
	return Account{
		ID:            acct.ID.String(),
		OwnerID:       acct.OwnerID.String(),
		Name:          acct.Name,
		Type:          typeNames[acct.Type],
		AccountNumber: acct.AccountNumber,
		Currency:      acct.Currency,
		Balance:       acct.Balance.String(),
		Version:       acct.Version,
		CreatedAt:     acct.CreatedAt.Format(time.RFC3339),
	}
}
