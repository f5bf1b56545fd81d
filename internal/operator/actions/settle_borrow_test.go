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

func TestSettleBorrow_Partial(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")
	payment := decimal.RequireFromString("40.00")

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, acct.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("460.00"))
		})).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Category == transaction.CategorySettlement &&
			c.Amount.Equal(decimal.RequireFromString("-40.00")) &&
			c.Description == "Debt payment to Dana"
	})).Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Debt.EXPECT().AppendSettlement(mock.Anything, borrow.ID,
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(payment) })).
		Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Debt.EXPECT().UpdateRemaining(mock.Anything, borrow.ID,
		mock.MatchedBy(func(r decimal.Decimal) bool {
			return r.Equal(decimal.RequireFromString("60.00"))
		})).Return(nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
		PaymentAmount: &payment,
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
	mocks.Debt.AssertNotCalled(t, "MarkSettled", mock.Anything, mock.Anything)
}

func TestSettleBorrow_FullDefaultsToRemaining(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, acct.ID,
		mock.MatchedBy(func(b decimal.Decimal) bool {
			return b.Equal(decimal.RequireFromString("400.00"))
		})).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Amount.Equal(decimal.RequireFromString("-100.00"))
	})).Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Debt.EXPECT().AppendSettlement(mock.Anything, borrow.ID, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Debt.EXPECT().MarkSettled(mock.Anything, borrow.ID).Return(nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
	mocks.Debt.AssertNotCalled(t, "UpdateRemaining", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleBorrow_OverpayWithinTolerance(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")
	payment := decimal.RequireFromString("100.0005")

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)
	mocks.Account.EXPECT().UpdateBalance(mock.Anything, userID, acct.ID, mock.Anything).Return(nil)
	mocks.Transaction.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Debt.EXPECT().AppendSettlement(mock.Anything, borrow.ID, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil)
	mocks.Debt.EXPECT().MarkSettled(mock.Anything, borrow.ID).Return(nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
		PaymentAmount: &payment,
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestSettleBorrow_OverpayBeyondTolerance(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")
	payment := decimal.RequireFromString("100.002")

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
		PaymentAmount: &payment,
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSettleBorrow_NegativePayment(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")
	payment := decimal.RequireFromString("-50.00")

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
		PaymentAmount: &payment,
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	mocks.Account.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.Debt.AssertNotCalled(t, "UpdateRemaining", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleBorrow_ZeroPayment(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")
	payment := decimal.Zero

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
		PaymentAmount: &payment,
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	mocks.Debt.AssertNotCalled(t, "AppendSettlement", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleBorrow_AlreadySettledCannotRefire(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "0")
	borrow.Status = debt.StatusSettled

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)

	// No payment given: the default collapses to the zero remainder.
	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	mocks.Debt.AssertNotCalled(t, "MarkSettled", mock.Anything, mock.Anything)
	mocks.Debt.AssertNotCalled(t, "AppendSettlement", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleBorrow_InsufficientFunds(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "30.00")
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")
	payment := decimal.RequireFromString("40.00")

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: acct.ID,
		PaymentAmount: &payment,
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestSettleBorrow_DebtMissing(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	acct := makeBankAccount(userID, "500.00")
	borrowID := uuid.Must(uuid.NewV4())

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrowID).Return(nil, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, acct.ID).Return(acct, nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrowID,
		FromAccountID: acct.ID,
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrDebtNotFound)
}

func TestSettleBorrow_AccountMissing(t *testing.T) {
	writer, mocks := newTestWriter(t)

	userID := "user-1"
	borrow := makeDebt(userID, debt.KindBorrow, "Dana", "100.00")
	accountID := uuid.Must(uuid.NewV4())

	mocks.Debt.EXPECT().FindByIDForUpdate(mock.Anything, userID, debt.KindBorrow, borrow.ID).Return(borrow, nil)
	mocks.Account.EXPECT().FindByIDForUpdate(mock.Anything, userID, accountID).Return(nil, nil)

	action := &SettleBorrow{
		UserID:        userID,
		BorrowID:      borrow.ID,
		FromAccountID: accountID,
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
