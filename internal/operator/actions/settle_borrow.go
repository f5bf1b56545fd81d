package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// SettleBorrow pays down a borrow from a tracked account. A nil
// PaymentAmount settles the whole remaining debt. When the remainder reaches
// zero (within tolerance) the record flips to settled, permanently.
type SettleBorrow struct {
	UserID        string
	BorrowID      uuid.UUID
	FromAccountID uuid.UUID
	PaymentAmount *decimal.Decimal
}

var _ IAction = (*SettleBorrow)(nil)

func (a *SettleBorrow) Perform(ctx context.Context, writer *storage.Writer) error {
	borrow, err := writer.Debt.FindByIDForUpdate(ctx, a.UserID, debt.KindBorrow, a.BorrowID)
	if err != nil {
		return err
	}
	acct, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.FromAccountID)
	if err != nil {
		return err
	}
	if borrow == nil {
		return ErrDebtNotFound
	}
	if acct == nil {
		return ErrAccountNotFound
	}

	amountToPay := borrow.RemainingAmount
	if a.PaymentAmount != nil {
		amountToPay = *a.PaymentAmount
	}
	if amountToPay.LessThanOrEqual(decimal.Zero) {
		// Covers already-settled records too: remaining 0 defaults the payment to 0.
		return ErrInvalidAmount
	}
	if amountToPay.GreaterThan(acct.Balance) {
		return ErrInsufficientFunds
	}
	if amountToPay.GreaterThan(borrow.RemainingAmount.Add(settlementTolerance)) {
		return ErrInvalidAmount
	}

	newBalance := acct.Balance.Sub(amountToPay)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.FromAccountID, newBalance); err != nil {
		return err
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.FromAccountID,
		Category:    transaction.CategorySettlement,
		Amount:      amountToPay.Neg(),
		Description: "Debt payment to " + borrow.Counterparty,
	})
	if err != nil {
		return err
	}

	if _, err := writer.Debt.AppendSettlement(ctx, a.BorrowID, amountToPay); err != nil {
		return err
	}

	newRemaining := borrow.RemainingAmount.Sub(amountToPay)
	if newRemaining.LessThanOrEqual(decimal.Zero) {
		return writer.Debt.MarkSettled(ctx, a.BorrowID)
	}
	return writer.Debt.UpdateRemaining(ctx, a.BorrowID, newRemaining)
}
