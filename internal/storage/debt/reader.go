package debt

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ IDebtReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

var debtColumns = []any{
	"id", "user_id", "kind", "counterparty", "description",
	"original_amount", "remaining_amount", "status", "created_at", "settled_date",
}

// List returns the user's debts of one kind, newest first, each with its
// settlements (newest first).
func (r *Reader) List(ctx context.Context, userID string, kind Kind) ([]*Debt, error) {
	query := psql.Select(
		sm.Columns(debtColumns...),
		sm.From("debts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("kind").EQ(psql.Arg(int16(kind)))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[debtRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Debt, len(rows))
	for i, row := range rows {
		d := rowToDebt(row)
		d.Settlements, err = r.listSettlements(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		result[i] = d
	}
	return result, nil
}

func (r *Reader) listSettlements(ctx context.Context, debtID uuid.UUID) ([]*Settlement, error) {
	query := psql.Select(
		sm.Columns("id", "debt_id", "amount", "created_at"),
		sm.From("settlements"),
		sm.Where(psql.Quote("debt_id").EQ(psql.Arg(debtID))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Settlement]())
	if err != nil {
		return nil, err
	}
	result := make([]*Settlement, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
