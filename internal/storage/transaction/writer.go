package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ ITransactionWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert appends a new ledger entry and returns its generated ID. The row's
// created_at comes from the database clock; inside one transaction Postgres
// now() is stable, so entries written together share a timestamp.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("transactions", "user_id", "account_id", "category", "amount", "description"),
		im.Values(psql.Arg(
			create.UserID,
			create.AccountID,
			create.Category,
			create.Amount,
			create.Description,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
