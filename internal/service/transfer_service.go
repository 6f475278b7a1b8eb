package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harbor-networks/ledger-server/internal/fault"
	"github.com/harbor-networks/ledger-server/internal/operator/actions"
	"github.com/harbor-networks/ledger-server/internal/storage"
)

const (
	conflictRetries = 3
	conflictBackoff = 25 * time.Millisecond
)

// highValueThreshold is the amount at or above which a transfer must go
// through the propose/confirm flow.
var highValueThreshold = decimal.NewFromInt(10000)

// MutationResult is what every balance-affecting operation returns: the
// ledger entries written and the source account's balance afterwards.
type MutationResult struct {
	Transactions []Transaction
	NewBalance   decimal.Decimal
	Replayed     bool
}

// TransferRequest describes a requested transfer. Destination is either an
// account number or an internal user id.
type TransferRequest struct {
	SourceAccountID          uuid.UUID
	DestinationAccountNumber string
	DestinationUserID        uuid.NullUUID
	DestinationName          string
	Amount                   decimal.Decimal
	Purpose                  string
	IdempotencyKey           string
	RequestedBy              uuid.UUID
}

// TransferService coordinates every balance-affecting operation. It is the
// only caller that pairs a balance write with a ledger append, and it does
// so through single-transaction actions executed by the operator pool.
type TransferService struct {
	storage   *storage.Storage
	processor processor
	proposals *proposalStore
}

// NewTransferService creates a new TransferService.
func NewTransferService(store *storage.Storage, proc processor) *TransferService {
	return &TransferService{
		storage:   store,
		processor: proc,
		proposals: newProposalStore(),
	}
}

// ExecuteDeposit credits the account and appends a deposit entry atomically.
func (s *TransferService) ExecuteDeposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, method, idempotencyKey string) (*MutationResult, error) {
	action, err := s.processWithRetry(ctx, func() actions.IAction {
		return &actions.Deposit{
			AccountID:      accountID,
			Amount:         amount,
			Method:         method,
			IdempotencyKey: idempotencyKey,
		}
	})
	if err != nil {
		return nil, err
	}
	return resultFromAction(action.(*actions.Deposit).Result), nil
}

// ExecuteWithdrawal debits the account and appends a withdrawal entry
// atomically. Fails without side effects when the amount exceeds the balance.
func (s *TransferService) ExecuteWithdrawal(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*MutationResult, error) {
	action, err := s.processWithRetry(ctx, func() actions.IAction {
		return &actions.Withdraw{
			AccountID:      accountID,
			Amount:         amount,
			IdempotencyKey: idempotencyKey,
		}
	})
	if err != nil {
		return nil, err
	}
	return resultFromAction(action.(*actions.Withdraw).Result), nil
}

// ExecuteTransfer performs a two-sided transfer. High-value and cross-user
// transfers are rejected here and must go through ProposeTransfer and
// ConfirmTransfer instead.
func (s *TransferService) ExecuteTransfer(ctx context.Context, req TransferRequest) (*MutationResult, error) {
	confirmationNeeded, err := s.requiresConfirmation(ctx, req)
	if err != nil {
		return nil, err
	}
	if confirmationNeeded {
		return nil, fault.Validationf("transfer requires confirmation: propose it first, then confirm the proposal")
	}
	return s.executeTransfer(ctx, req)
}

// ExecutePayBill debits the account for a provider bill with the same
// atomicity contract as a withdrawal.
func (s *TransferService) ExecutePayBill(ctx context.Context, accountID uuid.UUID, provider, providerAccountRef string, amount decimal.Decimal, recurring bool, idempotencyKey string) (*MutationResult, error) {
	action, err := s.processWithRetry(ctx, func() actions.IAction {
		return &actions.PayBill{
			AccountID:          accountID,
			Provider:           provider,
			ProviderAccountRef: providerAccountRef,
			Amount:             amount,
			Recurring:          recurring,
			IdempotencyKey:     idempotencyKey,
		}
	})
	if err != nil {
		return nil, err
	}
	return resultFromAction(action.(*actions.PayBill).Result), nil
}

// ProposeTransfer validates the request and stores it with no side effects.
// Discarding a proposal, or letting it expire, costs nothing.
func (s *TransferService) ProposeTransfer(ctx context.Context, req TransferRequest) (*Proposal, error) {
	if !req.Amount.IsPositive() {
		return nil, fault.Validationf("transfer amount must be positive, got %s", req.Amount)
	}
	if _, err := s.storage.Accounts.FindByID(ctx, req.SourceAccountID); err != nil {
		return nil, err
	}
	return s.proposals.add(req)
}

// ConfirmTransfer executes a previously proposed transfer. The proposal is
// consumed whether or not the transfer succeeds; a failed confirmation needs
// a fresh proposal.
func (s *TransferService) ConfirmTransfer(ctx context.Context, proposalID uuid.UUID) (*MutationResult, error) {
	proposal, err := s.proposals.take(proposalID)
	if err != nil {
		return nil, err
	}
	return s.executeTransfer(ctx, proposal.Request)
}

func (s *TransferService) executeTransfer(ctx context.Context, req TransferRequest) (*MutationResult, error) {
	action, err := s.processWithRetry(ctx, func() actions.IAction {
		return &actions.Transfer{
			SourceAccountID: req.SourceAccountID,
			Destination: actions.Destination{
				AccountNumber: req.DestinationAccountNumber,
				UserID:        req.DestinationUserID,
				DisplayName:   req.DestinationName,
			},
			Amount:         req.Amount,
			Purpose:        req.Purpose,
			IdempotencyKey: req.IdempotencyKey,
			RequestedBy:    req.RequestedBy,
		}
	})
	if err != nil {
		return nil, err
	}
	return resultFromAction(action.(*actions.Transfer).Result), nil
}

// requiresConfirmation reports whether the transfer must use the two-step
// flow: at or above the high-value threshold, or crossing user boundaries.
// The destination read here is advisory; the action re-resolves it under lock.
func (s *TransferService) requiresConfirmation(ctx context.Context, req TransferRequest) (bool, error) {
	if req.Amount.GreaterThanOrEqual(highValueThreshold) {
		return true, nil
	}

	if req.DestinationUserID.Valid {
		return req.DestinationUserID.UUID != req.RequestedBy, nil
	}

	dest, err := s.storage.Accounts.FindByNumber(ctx, req.DestinationAccountNumber)
	if err != nil {
		if fault.IsNotFound(err) {
			// External settlement; no internal owner to cross.
			return false, nil
		}
		return false, err
	}
	return dest.OwnerID != req.RequestedBy, nil
}

// processWithRetry submits a fresh action per attempt, retrying version
// conflicts with backoff. Each attempt re-reads state from scratch, so a
// stale first read cannot leak into the retry.
func (s *TransferService) processWithRetry(ctx context.Context, makeAction func() actions.IAction) (actions.IAction, error) {
	var lastErr error
	for attempt := 0; attempt <= conflictRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * conflictBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		action := makeAction()
		if err := s.processor.Process(ctx, action); err != nil {
			lastErr = err
			if fault.IsConflict(err) {
				continue
			}
			return nil, err
		}
		return action, nil
	}
	return nil, lastErr
}

func resultFromAction(result actions.Result) *MutationResult {
	converted := make([]Transaction, len(result.Entries))
	for i, entry := range result.Entries {
		converted[i] = transactionFromStorage(entry)
	}
	return &MutationResult{
		Transactions: converted,
		NewBalance:   result.NewBalance,
		Replayed:     result.Replayed,
	}
}
