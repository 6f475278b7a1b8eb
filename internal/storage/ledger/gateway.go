package ledger

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// entryRow mirrors the transactions table for scan mapping.
type entryRow struct {
	ID              uuid.UUID       `db:"id"`
	AccountID       uuid.UUID       `db:"account_id"`
	Seq             int64           `db:"seq"`
	Amount          decimal.Decimal `db:"amount"`
	Type            int16           `db:"type"`
	Category        int16           `db:"category"`
	Description     string          `db:"description"`
	CounterpartyRef string          `db:"counterparty_ref"`
	CorrelationID   uuid.NullUUID   `db:"correlation_id"`
	Status          int16           `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
}

var entryColumns = []any{
	"id", "account_id", "seq", "amount", "type", "category",
	"description", "counterparty_ref", "correlation_id", "status", "created_at",
}

// Gateway provides access to the transactions table. The table is
// append-only: no update or delete statement exists in this package.
type Gateway struct {
	exec bob.Executor
}

var _ Table = (*Gateway)(nil)

// NewGateway creates a ledger Gateway over the given executor.
func NewGateway(exec bob.Executor) *Gateway {
	return &Gateway{exec: exec}
}

// Append inserts a new entry with the next per-account sequence number.
// Callers must hold the account's row lock so the MAX(seq) read and the
// insert cannot race with another writer on the same account.
func (g *Gateway) Append(ctx context.Context, create *EntryCreate) (*Entry, error) {
	seqQuery := psql.Select(
		sm.Columns(psql.Raw("COALESCE(MAX(seq), 0) + 1")),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(create.AccountID))),
	)
	nextSeq, err := bob.One(ctx, g.exec, seqQuery, scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, err
	}

	insertQuery := psql.Insert(
		im.Into("transactions",
			"account_id", "seq", "amount", "type", "category",
			"description", "counterparty_ref", "correlation_id", "status",
		),
		im.Values(psql.Arg(
			create.AccountID,
			nextSeq,
			create.Amount,
			int16(create.Type),
			int16(create.Category),
			create.Description,
			create.CounterpartyRef,
			create.CorrelationID,
			int16(create.Status),
		)),
		im.Returning(entryColumns...),
	)
	row, err := bob.One(ctx, g.exec, insertQuery, scan.StructMapper[entryRow]())
	if err != nil {
		return nil, err
	}
	return rowToEntry(&row), nil
}

// List returns entries matching the filter, newest first. One extra row past
// the limit is fetched so callers can detect another page.
func (g *Gateway) List(ctx context.Context, filter *Filter) ([]*Entry, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(entryColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(filter.AccountID))),
	}

	if from, ok := filter.From.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").GTE(psql.Arg(from))))
	}
	if to, ok := filter.To.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(to))))
	}
	if entryType, ok := filter.Type.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(int16(entryType)))))
	}
	if category, ok := filter.Category.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(int16(category)))))
	}
	if filter.MaxCreationTime != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}

	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("seq").Desc(),
	)

	rows, err := bob.All(ctx, g.exec, psql.Select(queryMods...), scan.StructMapper[entryRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Entry, len(rows))
	for i := range rows {
		result[i] = rowToEntry(&rows[i])
	}
	return result, nil
}

// SumCompleted sums the signed amounts of all completed entries for an
// account. Pending and failed entries never contribute to the balance.
func (g *Gateway) SumCompleted(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.Where(psql.Quote("status").EQ(psql.Arg(int16(StatusCompleted)))),
	)
	return bob.One(ctx, g.exec, query, scan.SingleColumnMapper[decimal.Decimal])
}

func rowToEntry(row *entryRow) *Entry {
	return &Entry{
		ID:              row.ID,
		AccountID:       row.AccountID,
		Seq:             row.Seq,
		Amount:          row.Amount,
		Type:            Type(row.Type),
		Category:        Category(row.Category),
		Description:     row.Description,
		CounterpartyRef: row.CounterpartyRef,
		CorrelationID:   row.CorrelationID,
		Status:          Status(row.Status),
		CreatedAt:       row.CreatedAt,
	}
}
