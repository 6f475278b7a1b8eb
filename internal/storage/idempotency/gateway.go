package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/harbor-networks/ledger-server/internal/fault"
)

type recordRow struct {
	Key       string    `db:"key"`
	Operation string    `db:"operation"`
	Response  []byte    `db:"response"`
	CreatedAt time.Time `db:"created_at"`
}

// Gateway provides access to the idempotency_keys table.
type Gateway struct {
	exec bob.Executor
}

var _ Table = (*Gateway)(nil)

// NewGateway creates an idempotency Gateway over the given executor.
func NewGateway(exec bob.Executor) *Gateway {
	return &Gateway{exec: exec}
}

func (g *Gateway) Find(ctx context.Context, key string) (*Record, error) {
	query := psql.Select(
		sm.Columns("key", "operation", "response", "created_at"),
		sm.From("idempotency_keys"),
		sm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)
	row, err := bob.One(ctx, g.exec, query, scan.StructMapper[recordRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &Record{
		Key:       row.Key,
		Operation: row.Operation,
		Response:  row.Response,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Insert records the key. Two requests racing on the same key both pass
// Find before either commits; the loser's insert hits the primary key and
// surfaces as fault.Conflict so the caller re-reads into the replay path.
func (g *Gateway) Insert(ctx context.Context, record *Record) error {
	query := psql.Insert(
		im.Into("idempotency_keys", "key", "operation", "response"),
		im.Values(psql.Arg(record.Key, record.Operation, record.Response)),
	)
	_, err := bob.Exec(ctx, g.exec, query)
	if isUniqueViolation(err) {
		return fault.Conflictf("idempotency key %q already recorded", record.Key)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
