package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// AddLentMoney hands money from a tracked account straight to a borrower:
// the source account is debited and an outstanding lent record is opened for
// the full amount. Unlike transfers, a direct loan may not overdraw the
// source account.
type AddLentMoney struct {
	UserID        string
	Borrower      string
	Amount        decimal.Decimal
	FromAccountID uuid.UUID
}

var _ IAction = (*AddLentMoney)(nil)

func (a *AddLentMoney) Perform(ctx context.Context, writer *storage.Writer) error {
	acct, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.FromAccountID)
	if err != nil {
		return err
	}
	if acct == nil {
		return ErrAccountNotFound
	}

	if acct.Balance.LessThan(a.Amount) {
		return ErrInsufficientFunds
	}

	newBalance := acct.Balance.Sub(a.Amount)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.FromAccountID, newBalance); err != nil {
		return err
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.FromAccountID,
		Category:    transaction.CategoryLent,
		Amount:      a.Amount.Neg(),
		Description: "Loan to " + a.Borrower,
	})
	if err != nil {
		return err
	}

	_, err = writer.Debt.Create(ctx, &debt.DebtCreate{
		UserID:         a.UserID,
		Kind:           debt.KindLent,
		Counterparty:   a.Borrower,
		Description:    "Direct loan",
		OriginalAmount: a.Amount,
	})
	return err
}
