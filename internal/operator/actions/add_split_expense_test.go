package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func TestAddSplitExpense_TwoFriends(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "200.00")

	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)
	// The payer is debited the full amount even though two thirds of it is owed back.
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, acct.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("110.00"))
		})).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Amount.Equal(decimal.RequireFromString("-90.00")) &&
			c.Category == "Dining" &&
			c.Description == "Team dinner (Split)"
	})).Return(uuid.Must(uuid.NewV4()), nil)

	// 90 split three ways: payer's share is implicit, each friend owes 30.
	share := decimal.RequireFromString("30")
	for _, friend := range []string{"Alice", "Bob"} {
		mocks.Debt.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *debt.DebtCreate) bool {
			return c.UserID == userID &&
				c.Kind == debt.KindLent &&
				c.Counterparty == friend &&
				c.Description == "Team dinner" &&
				c.OriginalAmount.Equal(share)
		})).Return(uuid.Must(uuid.NewV4()), nil).Once()
	}

	action := &AddSplitExpense{
		UserID:      userID,
		AccountID:   acct.ID,
		Amount:      decimal.RequireFromString("90.00"),
		Category:    "Dining",
		Description: "Team dinner",
		SplitWith:   []string{"Alice", "Bob"},
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestAddSplitExpense_NoFriends(t *testing.T) {
	writer, _ := newTestWriter(t)

	action := &AddSplitExpense{
		UserID:    "user-1",
		AccountID: uuid.Must(uuid.NewV4()),
		Amount:    decimal.RequireFromString("90.00"),
		Category:  "Dining",
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAddSplitExpense_AccountMissing(t *testing.T) {
	writer, mocks := newTestWriter(t)

	accountID := uuid.Must(uuid.NewV4())
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, "user-1", accountID).Return(nil, nil)

	action := &AddSplitExpense{
		UserID:    "user-1",
		AccountID: accountID,
		Amount:    decimal.RequireFromString("90.00"),
		Category:  "Dining",
		SplitWith: []string{"Alice"},
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAddSplitExpense_CanOverdraw(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "50.00")

	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, acct.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("-40.00"))
		})).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Debt.EXPECT().Create(mock.Anything, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil)

	action := &AddSplitExpense{
		UserID:      userID,
		AccountID:   acct.ID,
		Amount:      decimal.RequireFromString("90.00"),
		Category:    "Dining",
		Description: "Team dinner",
		SplitWith:   []string{"Alice"},
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}
