package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func newTransactionTestService(t *testing.T) (*TransactionService, *transaction.MockITransactionReader) {
	t.Helper()
	mockReader := transaction.NewMockITransactionReader(t)
	store := &storage.Storage{Reader: &storage.Reader{Transactions: mockReader}}
	svc := NewTransactionService(store)
	return svc, mockReader
}

func makeStorageRows(n int, createdAt time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, n)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			UserID:      testUserID,
			AccountID:   uuid.Must(uuid.NewV4()),
			Category:    "Groceries",
			Amount:      decimal.RequireFromString("-5.00"),
			Description: "Item",
			CreatedAt:   createdAt,
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockReader := newTransactionTestService(t)

	mockReader.EXPECT().List(mock.Anything, testUserID, mock.Anything).
		Return([]*transaction.Transaction{}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), testUserID, nil, nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, mockReader := newTransactionTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(2, now)

	mockReader.EXPECT().List(mock.Anything, testUserID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 0 && f.MaxCreationTime == nil &&
			f.AccountID == nil && f.Category == nil
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), testUserID, nil, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)

	tx := txs[0]
	assert.Equal(t, rows[0].ID, tx.ID)
	assert.Equal(t, rows[0].AccountID, tx.AccountID)
	assert.Equal(t, rows[0].Category, tx.Category)
	assert.True(t, rows[0].Amount.Equal(tx.Amount))
	assert.Equal(t, rows[0].Description, tx.Description)
	assert.Equal(t, rows[0].CreatedAt, tx.CreatedAt)
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc, mockReader := newTransactionTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(defaultLimit+1, now)

	mockReader.EXPECT().List(mock.Anything, testUserID, mock.Anything).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), testUserID, nil, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")

	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
	assert.Equal(t, now, nextCursor.MaxCreationTime, "derived from first row")
}

func TestListTransactions_WithCursor(t *testing.T) {
	svc, mockReader := newTransactionTestService(t)

	cursorTime := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	rowTime := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	rows := makeStorageRows(3, rowTime) // limit=2, returns 3 → has next page

	mockReader.EXPECT().List(mock.Anything, testUserID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 2 &&
			f.Offset == 20 &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(cursorTime)
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), testUserID, nil, &TransactionCursor{
		Position:        20,
		Limit:           2,
		MaxCreationTime: cursorTime,
	})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)

	assert.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
	assert.Equal(t, cursorTime, nextCursor.MaxCreationTime, "echoed from cursor, not overridden by row data")
}

func TestListTransactions_WithQuery(t *testing.T) {
	svc, mockReader := newTransactionTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	category := "Dining"
	rows := makeStorageRows(1, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))

	mockReader.EXPECT().List(mock.Anything, testUserID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == accountID &&
			f.Category != nil && *f.Category == category
	})).Return(rows, nil)

	txs, _, err := svc.ListTransactions(context.Background(), testUserID, &TransactionQuery{
		AccountID: &accountID,
		Category:  &category,
	}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockReader := newTransactionTestService(t)

	mockReader.EXPECT().List(mock.Anything, testUserID, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), testUserID, nil, nil)

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}
