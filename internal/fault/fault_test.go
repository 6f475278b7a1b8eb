package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_WrappedError(t *testing.T) {
	base := Conflictf("version mismatch on account %s", "abc")
	wrapped := fmt.Errorf("executing withdrawal: %w", base)

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestRetryable(t *testing.T) {
	assert.False(t, Validationf("bad").(*Error).Retryable())
	assert.False(t, InsufficientFundsf("short").(*Error).Retryable())
	assert.True(t, NotFoundf("missing").(*Error).Retryable())
	assert.True(t, Conflictf("stale").(*Error).Retryable())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validationf("bad amount")))
	assert.True(t, IsInsufficientFunds(InsufficientFundsf("short")))
	assert.True(t, IsNotFound(NotFoundf("no account")))
	assert.True(t, IsConflict(Conflictf("stale version")))
	assert.False(t, IsConflict(NotFoundf("no account")))
	assert.False(t, IsValidation(errors.New("untyped")))
}

func TestWrap_PreservesUnderlying(t *testing.T) {
	underlying := errors.New("driver: bad connection")
	err := Wrap(KindConflict, "adjust balance", underlying)

	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, "adjust balance: driver: bad connection", err.Error())
}
