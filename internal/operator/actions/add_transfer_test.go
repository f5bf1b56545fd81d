package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func TestAddTransfer_Success(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	from := makeBankAccount(userID, "500.00")
	to := &account.Account{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  userID,
		Name:    "Savings",
		Type:    account.AccountTypeBank,
		Balance: decimal.RequireFromString("1000.00"),
	}

	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, from.ID).Return(from, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, to.ID).Return(to, nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, from.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("300.00"))
		})).Return(nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, to.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("1200.00"))
		})).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.AccountID == from.ID &&
			c.Category == transaction.CategoryTransfer &&
			c.Amount.Equal(decimal.RequireFromString("-200.00")) &&
			c.Description == "Transfer to Savings"
	})).Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.AccountID == to.ID &&
			c.Category == transaction.CategoryTransfer &&
			c.Amount.Equal(decimal.RequireFromString("200.00")) &&
			c.Description == "Transfer from Checking"
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := &AddTransfer{
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        decimal.RequireFromString("200.00"),
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestAddTransfer_NegativeAmountNormalized(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	from := makeBankAccount(userID, "500.00")
	to := makeBankAccount(userID, "0.00")

	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, from.ID).Return(from, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, to.ID).Return(to, nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, from.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("450.00"))
		})).Return(nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, to.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("50.00"))
		})).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil).Twice()

	action := &AddTransfer{
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        decimal.RequireFromString("-50.00"),
		Description:   "Top up",
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestAddTransfer_CanOverdrawSource(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	from := makeBankAccount(userID, "10.00")
	to := makeBankAccount(userID, "0.00")

	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, from.ID).Return(from, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, to.ID).Return(to, nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, from.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("-90.00"))
		})).Return(nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, to.ID, mock.Anything).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil).Twice()

	action := &AddTransfer{
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        decimal.RequireFromString("100.00"),
		Description:   "Rent",
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestAddTransfer_DestinationMissing(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	from := makeBankAccount(userID, "500.00")
	toID := uuid.Must(uuid.NewV4())

	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, from.ID).Return(from, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, toID).Return(nil, nil)

	action := &AddTransfer{
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   toID,
		Amount:        decimal.RequireFromString("200.00"),
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
