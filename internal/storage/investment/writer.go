package investment

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IInvestmentWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Create records a new holding and returns its generated ID.
func (w *Writer) Create(ctx context.Context, create *HoldingCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("investments", "user_id", "symbol", "name", "quantity", "purchase_value", "purchase_date"),
		im.Values(psql.Arg(
			create.UserID,
			create.Symbol,
			create.Name,
			create.Quantity,
			create.PurchaseValue,
			create.PurchaseDate,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete removes a holding from the user's portfolio.
func (w *Writer) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("investments"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
