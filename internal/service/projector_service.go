package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/harbor-networks/ledger-server/internal/storage"
	"github.com/harbor-networks/ledger-server/internal/storage/account"
)

const sweepPageSize = 100

// Reconciliation is the outcome of recomputing one account's balance from
// its ledger history.
type Reconciliation struct {
	AccountID      uuid.UUID
	StoredBalance  decimal.Decimal
	DerivedBalance decimal.Decimal
	Consistent     bool
}

// ProjectorService recomputes balances from ledger history to detect drift
// between the stored balance and the sum of completed entries. It never sits
// on the request-serving path.
type ProjectorService struct {
	storage *storage.Storage
}

// NewProjectorService creates a new ProjectorService.
func NewProjectorService(store *storage.Storage) *ProjectorService {
	return &ProjectorService{storage: store}
}

// Recompute sums the account's completed entries and compares the result to
// the stored balance.
func (s *ProjectorService) Recompute(ctx context.Context, accountID uuid.UUID) (*Reconciliation, error) {
	acct, err := s.storage.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	derived, err := s.storage.Ledger.SumCompleted(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &Reconciliation{
		AccountID:      accountID,
		StoredBalance:  acct.Balance,
		DerivedBalance: derived,
		Consistent:     acct.Balance.Equal(derived),
	}, nil
}

// RunSweep reconciles every account once per interval until the context is
// cancelled. Drift is logged, never auto-corrected: a correction is a
// deliberate compensating entry, not a background write.
func (s *ProjectorService) RunSweep(ctx context.Context, interval time.Duration, logger *logrus.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx, logger)
		}
	}
}

func (s *ProjectorService) sweepOnce(ctx context.Context, logger *logrus.Logger) {
	offset := 0
	for {
		accounts, err := s.storage.Accounts.List(ctx, &account.Filter{Limit: sweepPageSize, Offset: offset})
		if err != nil {
			logger.WithError(err).Error("Projector.sweep.list accounts")
			return
		}

		hasMore := len(accounts) > sweepPageSize
		if hasMore {
			accounts = accounts[:sweepPageSize]
		}

		for _, acct := range accounts {
			reconciliation, err := s.Recompute(ctx, acct.ID)
			if err != nil {
				logger.WithError(err).WithField("accountID", acct.ID.String()).Error("Projector.sweep.recompute")
				continue
			}
			if !reconciliation.Consistent {
				logger.WithFields(logrus.Fields{
					"accountID":      acct.ID.String(),
					"storedBalance":  reconciliation.StoredBalance.String(),
					"derivedBalance": reconciliation.DerivedBalance.String(),
				}).Error("Projector.sweep.drift detected")
			}
		}

		if !hasMore {
			return
		}
		offset += sweepPageSize
	}
}
