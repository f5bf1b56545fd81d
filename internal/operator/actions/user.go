package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// SetPreferences stores the user's currency and theme.
type SetPreferences struct {
	UserID   string
	Currency string
	Theme    string
}

var _ IAction = (*SetPreferences)(nil)

func (a *SetPreferences) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.User.SetPreferences(ctx, &user.Preferences{
		UserID:   a.UserID,
		Currency: a.Currency,
		Theme:    a.Theme,
	})
}

// SubmitFeedback stores a free-text message from the user.
type SubmitFeedback struct {
	UserID  string
	Message string
}

var _ IAction = (*SubmitFeedback)(nil)

func (a *SubmitFeedback) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.User.InsertFeedback(ctx, &user.Feedback{
		UserID:  a.UserID,
		Message: a.Message,
	})
	return err
}
