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
	"github.com/carson-networks/ledger-server/internal/storage/debt"
)

func newDebtTestService(t *testing.T) (*DebtService, *debt.MockIDebtReader) {
	t.Helper()
	mockReader := debt.NewMockIDebtReader(t)
	store := &storage.Storage{Reader: &storage.Reader{Debts: mockReader}}
	svc := NewDebtService(store)
	return svc, mockReader
}

func TestListBorrows_Success(t *testing.T) {
	svc, mockReader := newDebtTestService(t)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	settledAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := []*debt.Debt{
		{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          testUserID,
			Kind:            debt.KindBorrow,
			Counterparty:    "Dana",
			Description:     "Rent loan",
			OriginalAmount:  decimal.RequireFromString("300.00"),
			RemainingAmount: decimal.RequireFromString("100.00"),
			Status:          debt.StatusOutstanding,
			CreatedAt:       createdAt,
			Settlements: []*debt.Settlement{
				{
					ID:        uuid.Must(uuid.NewV4()),
					Amount:    decimal.RequireFromString("200.00"),
					CreatedAt: settledAt,
				},
			},
		},
		{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          testUserID,
			Kind:            debt.KindBorrow,
			Counterparty:    "Eli",
			OriginalAmount:  decimal.RequireFromString("50.00"),
			RemainingAmount: decimal.Zero,
			Status:          debt.StatusSettled,
			CreatedAt:       createdAt,
			SettledDate:     &settledAt,
		},
	}

	mockReader.EXPECT().List(mock.Anything, testUserID, debt.KindBorrow).Return(rows, nil)

	debts, err := svc.ListBorrows(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Len(t, debts, 2)

	open := debts[0]
	assert.Equal(t, rows[0].ID, open.ID)
	assert.Equal(t, "Dana", open.Counterparty)
	assert.Equal(t, "Rent loan", open.Description)
	assert.True(t, open.OriginalAmount.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, open.RemainingAmount.Equal(decimal.RequireFromString("100.00")))
	assert.False(t, open.Settled)
	assert.Nil(t, open.SettledDate)
	assert.Len(t, open.Settlements, 1)
	assert.True(t, open.Settlements[0].Amount.Equal(decimal.RequireFromString("200.00")))

	closed := debts[1]
	assert.True(t, closed.Settled)
	assert.Equal(t, &settledAt, closed.SettledDate)
	assert.Empty(t, closed.Settlements)
}

func TestListLent_Success(t *testing.T) {
	svc, mockReader := newDebtTestService(t)

	rows := []*debt.Debt{
		{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          testUserID,
			Kind:            debt.KindLent,
			Counterparty:    "Alice",
			Description:     "Team dinner",
			OriginalAmount:  decimal.RequireFromString("30.00"),
			RemainingAmount: decimal.RequireFromString("30.00"),
			Status:          debt.StatusOutstanding,
		},
	}

	mockReader.EXPECT().List(mock.Anything, testUserID, debt.KindLent).Return(rows, nil)

	debts, err := svc.ListLent(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Len(t, debts, 1)
	assert.Equal(t, "Alice", debts[0].Counterparty)
	assert.False(t, debts[0].Settled)
}

func TestListBorrows_StorageError(t *testing.T) {
	svc, mockReader := newDebtTestService(t)

	mockReader.EXPECT().List(mock.Anything, testUserID, debt.KindBorrow).
		Return(nil, errors.New("database unavailable"))

	debts, err := svc.ListBorrows(context.Background(), testUserID)

	assert.Error(t, err)
	assert.Nil(t, debts)
}
