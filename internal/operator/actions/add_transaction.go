package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// AddTransaction appends one ledger entry and moves the account balance by
// the same amount. Amount carries its own sign: negative for an expense,
// positive for an inflow.
type AddTransaction struct {
	UserID      string
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Description string
}

var _ IAction = (*AddTransaction)(nil)

func (a *AddTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
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

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.AccountID,
		Category:    a.Category,
		Amount:      a.Amount,
		Description: a.Description,
	})
	return err
}
