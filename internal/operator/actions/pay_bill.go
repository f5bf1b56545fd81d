package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// PayBill pays a credit card bill from a tracked account. Card balances are
// stored negative, so the payment moves the card balance toward zero. When
// the payment does not match the outstanding balance, a Fees entry on the
// card reconciles the difference so the card ends at the balance the
// statement implies.
type PayBill struct {
	UserID          string
	CreditCardID    uuid.UUID
	SourceAccountID uuid.UUID
	Amount          decimal.Decimal
}

var _ IAction = (*PayBill)(nil)

func (a *PayBill) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	card, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.CreditCardID)
	if err != nil {
		return err
	}
	source, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.SourceAccountID)
	if err != nil {
		return err
	}
	if card == nil || source == nil {
		return ErrAccountNotFound
	}
	if card.Type != account.AccountTypeCreditCard {
		return ErrInvalidAccountType
	}

	outstandingBalance := card.Balance.Abs()
	discrepancy := a.Amount.Sub(outstandingBalance)
	finalCardBalance := card.Balance.Add(a.Amount)

	if discrepancy.Abs().GreaterThan(reconcileThreshold) {
		_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
			UserID:      a.UserID,
			AccountID:   a.CreditCardID,
			Category:    transaction.CategoryFees,
			Amount:      discrepancy.Neg(),
			Description: "Card Payment Misc.",
		})
		if err != nil {
			return err
		}
		finalCardBalance = finalCardBalance.Sub(discrepancy)
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.SourceAccountID,
		Category:    transaction.CategoryTransfer,
		Amount:      a.Amount.Neg(),
		Description: "Payment to " + card.Name,
	})
	if err != nil {
		return err
	}
	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.CreditCardID,
		Category:    transaction.CategoryTransfer,
		Amount:      a.Amount,
		Description: "Payment from " + source.Name,
	})
	if err != nil {
		return err
	}

	newSourceBalance := source.Balance.Sub(a.Amount)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.SourceAccountID, newSourceBalance); err != nil {
		return err
	}
	return writer.Account.UpdateBalance(ctx, a.UserID, a.CreditCardID, finalCardBalance)
}
