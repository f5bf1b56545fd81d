package debt

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IDebtWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate reads a debt record and takes a row lock so the remaining
// amount can be rewritten later in the same transaction. A missing record is
// reported as (nil, nil). Settlements are not loaded; mutations never need
// the settlement history, only the remaining amount.
func (w *Writer) FindByIDForUpdate(ctx context.Context, userID string, kind Kind, id uuid.UUID) (*Debt, error) {
	query := psql.Select(
		sm.Columns(debtColumns...),
		sm.From("debts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("kind").EQ(psql.Arg(int16(kind)))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[debtRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToDebt(row), nil
}

// Create opens a new outstanding debt and returns its generated ID.
func (w *Writer) Create(ctx context.Context, create *DebtCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("debts", "user_id", "kind", "counterparty", "description", "original_amount", "remaining_amount", "status"),
		im.Values(psql.Arg(
			create.UserID,
			int16(create.Kind),
			create.Counterparty,
			create.Description,
			create.OriginalAmount,
			create.OriginalAmount,
			int16(StatusOutstanding),
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// AppendSettlement records one payment event against a debt.
func (w *Writer) AppendSettlement(ctx context.Context, debtID uuid.UUID, amount decimal.Decimal) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("settlements", "debt_id", "amount"),
		im.Values(psql.Arg(debtID, amount)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateRemaining rewrites the remaining amount of a still-outstanding debt.
func (w *Writer) UpdateRemaining(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error {
	query := psql.Update(
		um.Table("debts"),
		um.SetCol("remaining_amount").ToArg(remaining),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

// MarkSettled zeroes the remaining amount, flips the status, and stamps the
// settled date with the database clock. The status transition is one-way;
// callers must not invoke this on an already-settled record.
func (w *Writer) MarkSettled(ctx context.Context, id uuid.UUID) error {
	query := psql.Update(
		um.Table("debts"),
		um.SetCol("remaining_amount").ToArg(decimal.Zero),
		um.SetCol("status").ToArg(int16(StatusSettled)),
		um.SetCol("settled_date").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
