package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// AddSplitExpense debits the payer for the whole expense and opens one lent
// record per named friend for their equal share. The payer's own share is
// implicit: the amount is divided by len(SplitWith)+1 and no record is
// created for the payer.
type AddSplitExpense struct {
	UserID      string
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Description string
	SplitWith   []string
}

var _ IAction = (*AddSplitExpense)(nil)

func (a *AddSplitExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(a.SplitWith) == 0 {
		return ErrInvalidAmount
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.AccountID)
	if err != nil {
		return err
	}
	if acct == nil {
		return ErrAccountNotFound
	}

	newBalance := acct.Balance.Sub(a.Amount)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.AccountID, newBalance); err != nil {
		return err
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.AccountID,
		Category:    a.Category,
		Amount:      a.Amount.Neg(),
		Description: a.Description + " (Split)",
	})
	if err != nil {
		return err
	}

	splitAmount := a.Amount.Div(decimal.NewFromInt(int64(len(a.SplitWith) + 1)))
	for _, friendName := range a.SplitWith {
		_, err = writer.Debt.Create(ctx, &debt.DebtCreate{
			UserID:         a.UserID,
			Kind:           debt.KindLent,
			Counterparty:   friendName,
			Description:    a.Description,
			OriginalAmount: splitAmount,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
