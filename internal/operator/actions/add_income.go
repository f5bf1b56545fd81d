package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// AddIncome credits the account. When the money was borrowed rather than
// earned, the entry is categorized Borrowed and an outstanding borrow record
// is opened against the lender for the full amount.
type AddIncome struct {
	UserID      string
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	IsBorrowing bool
	Lender      string
}

var _ IAction = (*AddIncome)(nil)

func (a *AddIncome) Perform(ctx context.Context, writer *storage.Writer) error {
	acct, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.AccountID)
	if err != nil {
		return err
	}
	if acct == nil {
		return ErrAccountNotFound
	}

	newBalance := acct.Balance.Add(a.Amount)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.AccountID, newBalance); err != nil {
		return err
	}

	category := transaction.CategoryIncome
	if a.IsBorrowing {
		category = transaction.CategoryBorrowed
	}
	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.AccountID,
		Category:    category,
		Amount:      a.Amount,
		Description: a.Description,
	})
	if err != nil {
		return err
	}

	if a.IsBorrowing && a.Lender != "" {
		_, err = writer.Debt.Create(ctx, &debt.DebtCreate{
			UserID:         a.UserID,
			Kind:           debt.KindBorrow,
			Counterparty:   a.Lender,
			Description:    a.Description,
			OriginalAmount: a.Amount,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
