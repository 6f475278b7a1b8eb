package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/harbor-networks/ledger-server/internal/config"
	"github.com/harbor-networks/ledger-server/internal/storage/account"
	"github.com/harbor-networks/ledger-server/internal/storage/idempotency"
	"github.com/harbor-networks/ledger-server/internal/storage/ledger"
)

// Storage is the root of the persistence layer. The table fields are
// read-only gateways over the shared connection pool; all mutations go
// through a Writer obtained from Write.
type Storage struct {
	DB          *sql.DB
	bdb         bob.DB
	Accounts    account.Table
	Ledger      ledger.Table
	Idempotency idempotency.Table
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	return NewStorageFromDB(db)
}

// NewStorageFromDB builds Storage over an existing connection pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	bdb := bob.NewDB(db)
	return &Storage{
		DB:          db,
		bdb:         bdb,
		Accounts:    account.NewGateway(bdb),
		Ledger:      ledger.NewGateway(bdb),
		Idempotency: idempotency.NewGateway(bdb),
	}
}

// Write begins a database transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
