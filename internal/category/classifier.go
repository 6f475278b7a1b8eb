// Package category derives a reporting category from a ledger entry's
// metadata. Classification is a pure function over an ordered rule table, so
// list views and exports always agree on the category of the same entry.
package category

import (
	"strings"

	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

// rule maps a description keyword to a category. Rules are checked in order;
// the first match wins.
type rule struct {
	keyword  string
	category ledger.Category
}

var descriptionRules = []rule{
	{"grocery", ledger.CategoryFood},
	{"restaurant", ledger.CategoryFood},
	{"cafe", ledger.CategoryFood},
	{"coffee", ledger.CategoryFood},
	{"food", ledger.CategoryFood},
	{"uber", ledger.CategoryTransport},
	{"taxi", ledger.CategoryTransport},
	{"fuel", ledger.CategoryTransport},
	{"gas station", ledger.CategoryTransport},
	{"transit", ledger.CategoryTransport},
	{"parking", ledger.CategoryTransport},
	{"amazon", ledger.CategoryShopping},
	{"store", ledger.CategoryShopping},
	{"shop", ledger.CategoryShopping},
	{"mall", ledger.CategoryShopping},
	{"electric", ledger.CategoryUtilities},
	{"water", ledger.CategoryUtilities},
	{"internet", ledger.CategoryUtilities},
	{"phone", ledger.CategoryUtilities},
	{"utility", ledger.CategoryUtilities},
	{"rent", ledger.CategoryUtilities},
}

// Classify returns the category for a ledger entry. Description keywords are
// checked first; entries with no keyword match fall back to a category
// derived from the transaction type.
func Classify(description string, entryType ledger.Type) ledger.Category {
	normalized := strings.ToLower(description)
	for _, r := range descriptionRules {
		if strings.Contains(normalized, r.keyword) {
			return r.category
		}
	}

	switch entryType {
	case ledger.TypeDeposit:
		return ledger.CategoryDeposit
	case ledger.TypeWithdrawal:
		return ledger.CategoryWithdrawal
	case ledger.TypeTransferOut, ledger.TypeTransferIn:
		return ledger.CategoryTransfer
	case ledger.TypeBillPayment, ledger.TypeRecurringPayment:
		return ledger.CategoryPayment
	}
	return ledger.CategoryOther
}
