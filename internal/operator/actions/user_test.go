package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

func TestSetPreferences_Success(t *testing.T) {
	mockWriter := user.NewMockIUserWriter(t)
	writer := &storage.Writer{User: mockWriter}

	mockWriter.EXPECT().SetPreferences(mock.Anything, mock.MatchedBy(func(p *user.Preferences) bool {
		return p.UserID == "user-1" && p.Currency == "EUR" && p.Theme == "dark"
	})).Return(nil)

	action := &SetPreferences{UserID: "user-1", Currency: "EUR", Theme: "dark"}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestSubmitFeedback_Success(t *testing.T) {
	mockWriter := user.NewMockIUserWriter(t)
	writer := &storage.Writer{User: mockWriter}

	mockWriter.EXPECT().InsertFeedback(mock.Anything, mock.MatchedBy(func(f *user.Feedback) bool {
		return f.UserID == "user-1" && f.Message == "Love the split feature"
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := &SubmitFeedback{UserID: "user-1", Message: "Love the split feature"}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}
