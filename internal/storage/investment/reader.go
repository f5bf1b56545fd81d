package investment

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ IInvestmentReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns the user's holdings, most recently purchased first.
func (r *Reader) List(ctx context.Context, userID string) ([]*Holding, error) {
	query := psql.Select(
		sm.Columns("id", "user_id", "symbol", "name", "quantity", "purchase_value", "purchase_date"),
		sm.From("investments"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("purchase_date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Holding]())
	if err != nil {
		return nil, err
	}
	result := make([]*Holding, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
