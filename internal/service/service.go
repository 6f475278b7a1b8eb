package service

import (
	"context"

	"github.com/harbor-networks/ledger-server/internal/operator/actions"
	"github.com/harbor-networks/ledger-server/internal/storage"
)

// processor submits an action for transactional execution and waits for it
// to finish. The operator delegator satisfies this in production.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account   *AccountService
	Ledger    *LedgerService
	Transfer  *TransferService
	Projector *ProjectorService
}

// NewService creates a new Service with the given storage and processor.
func NewService(store *storage.Storage, proc processor) *Service {
	return &Service{
		Account:   NewAccountService(store, proc),
		Ledger:    NewLedgerService(store),
		Transfer:  NewTransferService(store, proc),
		Projector: NewProjectorService(store),
	}
}
