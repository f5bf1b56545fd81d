package user

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Preferences are the per-user display settings. They never influence ledger
// math, only presentation.
type Preferences struct {
	UserID   string `db:"id"`
	Currency string `db:"currency"`
	Theme    string `db:"theme"`
}

const (
	DefaultCurrency = "INR"
	DefaultTheme    = "system"
)

// Feedback is a free-text message submitted by a user.
type Feedback struct {
	UserID  string
	Message string
}

// IUserReader defines the read-side user storage operations.
//
//go:generate mockery --name IUserReader --output . --inpackage
type IUserReader interface {
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
}

// IUserWriter defines the transactional user storage operations.
//
//go:generate mockery --name IUserWriter --output . --inpackage
type IUserWriter interface {
	SetPreferences(ctx context.Context, prefs *Preferences) error
	InsertFeedback(ctx context.Context, feedback *Feedback) (uuid.UUID, error)
}
