package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// AddTransfer moves money between two tracked accounts, writing one entry on
// each side with equal and opposite amounts. Both entries share a timestamp
// because created_at is assigned by the transaction-stable database clock.
// Transfers may overdraw the source account; only loans and settlements check
// balances.
type AddTransfer struct {
	UserID        string
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Description   string
}

var _ IAction = (*AddTransfer)(nil)

func (a *AddTransfer) Perform(ctx context.Context, writer *storage.Writer) error {
	fromAcct, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.FromAccountID)
	if err != nil {
		return err
	}
	toAcct, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.ToAccountID)
	if err != nil {
		return err
	}
	if fromAcct == nil || toAcct == nil {
		return ErrAccountNotFound
	}

	amount := a.Amount.Abs()

	newFromBalance := fromAcct.Balance.Sub(amount)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.FromAccountID, newFromBalance); err != nil {
		return err
	}
	newToBalance := toAcct.Balance.Add(amount)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.ToAccountID, newToBalance); err != nil {
		return err
	}

	outDescription := a.Description
	if outDescription == "" {
		outDescription = "Transfer to " + toAcct.Name
	}
	inDescription := a.Description
	if inDescription == "" {
		inDescription = "Transfer from " + fromAcct.Name
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.FromAccountID,
		Category:    transaction.CategoryTransfer,
		Amount:      amount.Neg(),
		Description: outDescription,
	})
	if err != nil {
		return err
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.ToAccountID,
		Category:    transaction.CategoryTransfer,
		Amount:      amount,
		Description: inDescription,
	})
	return err
}
