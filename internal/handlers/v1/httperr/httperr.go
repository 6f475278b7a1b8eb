// Package httperr maps ledger fault kinds onto HTTP status errors so every
// handler surfaces retryable and terminal failures consistently.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harbor-networks/ledger-server/internal/fault"
)

// FromFault converts a fault-kinded error to the matching Huma status error.
// Errors without a kind become a 500 with the fallback message.
func FromFault(err error, fallback string) error {
	var fe *fault.Error
	if !errors.As(err, &fe) {
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}

	switch fe.Kind {
	case fault.KindValidation:
		return huma.NewError(http.StatusBadRequest, fe.Error())
	case fault.KindInsufficientFunds:
		return huma.NewError(http.StatusUnprocessableEntity, fe.Error())
	case fault.KindNotFound:
		return huma.NewError(http.StatusNotFound, fe.Error())
	case fault.KindConflict:
		return huma.NewError(http.StatusConflict, fe.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
