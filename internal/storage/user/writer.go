package user

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IUserWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// SetPreferences stores the user's preferences, creating the row on first
// save. Update-then-insert is safe here because the row is keyed by the
// session's user id, so two sessions of the same user serialize on the row.
func (w *Writer) SetPreferences(ctx context.Context, prefs *Preferences) error {
	update := psql.Update(
		um.Table("users"),
		um.SetCol("currency").ToArg(prefs.Currency),
		um.SetCol("theme").ToArg(prefs.Theme),
		um.Where(psql.Quote("id").EQ(psql.Arg(prefs.UserID))),
	)
	result, err := bob.Exec(ctx, w.tx, update)
	if err != nil {
		return err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated > 0 {
		return nil
	}

	insert := psql.Insert(
		im.Into("users", "id", "currency", "theme"),
		im.Values(psql.Arg(prefs.UserID, prefs.Currency, prefs.Theme)),
	)
	_, err = bob.Exec(ctx, w.tx, insert)
	return err
}

// InsertFeedback stores a submitted message and returns its generated ID.
func (w *Writer) InsertFeedback(ctx context.Context, feedback *Feedback) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("feedback", "user_id", "message"),
		im.Values(psql.Arg(feedback.UserID, feedback.Message)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
