package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IAccountWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate reads an account and takes a row lock so the balance can
// be rewritten later in the same transaction. A missing account is reported
// as (nil, nil).
func (w *Writer) FindByIDForUpdate(ctx context.Context, userID string, id uuid.UUID) (*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[accountRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToAccount(row), nil
}

// Create inserts a new account and returns its generated ID.
func (w *Writer) Create(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	var creditLimit any
	if create.CreditLimit.Valid {
		creditLimit = create.CreditLimit.Decimal
	}
	var billingCycleDay any
	if create.BillingCycleDay != nil {
		billingCycleDay = *create.BillingCycleDay
	}

	query := psql.Insert(
		im.Into("accounts", "user_id", "name", "type", "balance", "credit_limit", "billing_cycle_day"),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			int16(create.Type),
			create.Balance,
			creditLimit,
			billingCycleDay,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update rewrites the provided account fields.
func (w *Writer) Update(ctx context.Context, userID string, id uuid.UUID, update *AccountUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("accounts"),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if update.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*update.Name))
	}
	if update.Type != nil {
		queryMods = append(queryMods, um.SetCol("type").ToArg(int16(*update.Type)))
	}
	if update.Balance != nil {
		queryMods = append(queryMods, um.SetCol("balance").ToArg(*update.Balance))
	}
	if update.CreditLimit != nil {
		queryMods = append(queryMods, um.SetCol("credit_limit").ToArg(*update.CreditLimit))
	}
	if update.BillingCycleDay != nil {
		queryMods = append(queryMods, um.SetCol("billing_cycle_day").ToArg(*update.BillingCycleDay))
	}

	_, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	return err
}

// UpdateBalance rewrites the balance for a given account.
func (w *Writer) UpdateBalance(ctx context.Context, userID string, id uuid.UUID, balance decimal.Decimal) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

// Delete removes the account row. Transactions that reference the account are
// intentionally left in place.
func (w *Writer) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
