package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/harbor-networks/ledger-server/internal/fault"
)

// accountRow mirrors the accounts table for scan mapping.
type accountRow struct {
	ID            uuid.UUID       `db:"id"`
	OwnerID       uuid.UUID       `db:"owner_id"`
	Name          string          `db:"name"`
	Type          int16           `db:"type"`
	AccountNumber string          `db:"account_number"`
	Currency      string          `db:"currency"`
	Balance       decimal.Decimal `db:"balance"`
	Version       int64           `db:"version"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

var accountColumns = []any{
	"id", "owner_id", "name", "type", "account_number",
	"currency", "balance", "version", "created_at", "updated_at",
}

// Gateway provides access to the accounts table.
type Gateway struct {
	exec bob.Executor
}

var _ Table = (*Gateway)(nil)

// NewGateway creates an account Gateway over the given executor.
func NewGateway(exec bob.Executor) *Gateway {
	return &Gateway{exec: exec}
}

func (g *Gateway) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return g.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

func (g *Gateway) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return g.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
}

func (g *Gateway) FindByNumber(ctx context.Context, accountNumber string) (*Account, error) {
	return g.findOne(ctx, sm.Where(psql.Quote("account_number").EQ(psql.Arg(accountNumber))))
}

func (g *Gateway) FindPrimaryForOwner(ctx context.Context, ownerID uuid.UUID) (*Account, error) {
	return g.findOne(ctx,
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("created_at").Asc(),
		sm.Limit(1),
	)
}

func (g *Gateway) findOne(ctx context.Context, mods ...bob.Mod[*dialect.SelectQuery]) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From("accounts"),
	}
	queryMods = append(queryMods, mods...)

	row, err := bob.One(ctx, g.exec, psql.Select(queryMods...), scan.StructMapper[accountRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fault.NotFoundf("account not found")
		}
		return nil, err
	}
	return rowToAccount(&row), nil
}

// ListForOwner returns the owner's accounts. One extra row past the limit is
// fetched so callers can detect another page.
func (g *Gateway) ListForOwner(ctx context.Context, ownerID uuid.UUID, filter *Filter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, g.exec, psql.Select(queryMods...), scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = rowToAccount(&rows[i])
	}
	return result, nil
}

// List returns a page of all accounts ordered by creation time, oldest
// first, so a reconciliation sweep visits accounts in a stable order.
func (g *Gateway) List(ctx context.Context, filter *Filter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From("accounts"),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, g.exec, psql.Select(queryMods...), scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = rowToAccount(&rows[i])
	}
	return result, nil
}

func (g *Gateway) Insert(ctx context.Context, create *Create) (*Account, error) {
	query := psql.Insert(
		im.Into("accounts", "owner_id", "name", "type", "account_number", "currency", "balance", "version"),
		im.Values(psql.Arg(
			create.OwnerID,
			create.Name,
			int16(create.Type),
			create.AccountNumber,
			create.Currency,
			decimal.Zero,
			int64(1),
		)),
		im.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, g.exec, query, scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}
	return rowToAccount(&row), nil
}

func (g *Gateway) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal, expectedVersion int64) (*Account, error) {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("version").ToArg(expectedVersion+1),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("version").EQ(psql.Arg(expectedVersion))),
		um.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, g.exec, query, scan.StructMapper[accountRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The row exists but the version moved underneath us.
			return nil, fault.Conflictf("account version is stale, expected %d", expectedVersion)
		}
		return nil, err
	}
	return rowToAccount(&row), nil
}

func rowToAccount(row *accountRow) *Account {
	return &Account{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Name:          row.Name,
		Type:          Type(row.Type),
		AccountNumber: row.AccountNumber,
		Currency:      row.Currency,
		Balance:       row.Balance,
		Version:       row.Version,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
