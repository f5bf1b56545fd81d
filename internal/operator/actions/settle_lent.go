package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// SettleLent records a repayment from a borrower into a tracked account. The
// mirror of SettleBorrow with inflow semantics; there is no balance check
// because the money arrives from outside the ledger.
type SettleLent struct {
	UserID        string
	LentID        uuid.UUID
	ToAccountID   uuid.UUID
	PaymentAmount *decimal.Decimal
}

var _ IAction = (*SettleLent)(nil)

func (a *SettleLent) Perform(ctx context.Context, writer *storage.Writer) error {
	lent, err := writer.Debt.FindByIDForUpdate(ctx, a.UserID, debt.KindLent, a.LentID)
	if err != nil {
		return err
	}
	acct, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.ToAccountID)
	if err != nil {
		return err
	}
	if lent == nil {
		return ErrDebtNotFound
	}
	if acct == nil {
		return ErrAccountNotFound
	}

	amountToSettle := lent.RemainingAmount
	if a.PaymentAmount != nil {
		amountToSettle = *a.PaymentAmount
	}
	if amountToSettle.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amountToSettle.GreaterThan(lent.RemainingAmount.Add(settlementTolerance)) {
		return ErrInvalidAmount
	}

	newBalance := acct.Balance.Add(amountToSettle)
	if err := writer.Account.UpdateBalance(ctx, a.UserID, a.ToAccountID, newBalance); err != nil {
		return err
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.ToAccountID,
		Category:    transaction.CategoryReimbursement,
		Amount:      amountToSettle,
		Description: "Payment from " + lent.Counterparty,
	})
	if err != nil {
		return err
	}

	if _, err := writer.Debt.AppendSettlement(ctx, a.LentID, amountToSettle); err != nil {
		return err
	}

	newRemaining := lent.RemainingAmount.Sub(amountToSettle)
	if newRemaining.LessThanOrEqual(decimal.Zero) {
		return writer.Debt.MarkSettled(ctx, a.LentID)
	}
	return writer.Debt.UpdateRemaining(ctx, a.LentID, newRemaining)
}
