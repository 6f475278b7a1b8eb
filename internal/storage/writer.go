package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/harbor-networks/ledger-server/internal/storage/account"
	"github.com/harbor-networks/ledger-server/internal/storage/idempotency"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

type transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer bundles the table gateways over one database transaction. Either
// Commit or Rollback applies to every write made through it.
type Writer struct {
	tx          transaction
	Accounts    account.Table
	Ledger      ledger.Table
	Idempotency idempotency.Table
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Accounts:    account.NewGateway(tx),
		Ledger:      ledger.NewGateway(tx),
		Idempotency: idempotency.NewGateway(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
