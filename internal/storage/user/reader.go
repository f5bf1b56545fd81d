package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ IUserReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// GetPreferences returns the user's stored preferences, or the defaults when
// the user has never saved any.
func (r *Reader) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	query := psql.Select(
		sm.Columns("id", "currency", "theme"),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(userID))),
	)
	prefs, err := bob.One(ctx, r.exec, query, scan.StructMapper[Preferences]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &Preferences{
				UserID:   userID,
				Currency: DefaultCurrency,
				Theme:    DefaultTheme,
			}, nil
		}
		return nil, err
	}
	return &prefs, nil
}
