package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/investment"
)

// AddInvestment records a purchased position. Holdings live outside the
// ledger math; they never touch an account balance.
type AddInvestment struct {
	UserID        string
	Symbol        string
	Name          string
	Quantity      decimal.Decimal
	PurchaseValue decimal.Decimal
	PurchaseDate  time.Time
}

var _ IAction = (*AddInvestment)(nil)

func (a *AddInvestment) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Quantity.LessThanOrEqual(decimal.Zero) || a.PurchaseValue.LessThan(decimal.Zero) {
		return ErrInvalidAmount
	}
	_, err := writer.Investment.Create(ctx, &investment.HoldingCreate{
		UserID:        a.UserID,
		Symbol:        a.Symbol,
		Name:          a.Name,
		Quantity:      a.Quantity,
		PurchaseValue: a.PurchaseValue,
		PurchaseDate:  a.PurchaseDate,
	})
	return err
}

// DeleteInvestment removes a holding from the portfolio.
type DeleteInvestment struct {
	UserID       string
	InvestmentID uuid.UUID
}

var _ IAction = (*DeleteInvestment)(nil)

func (a *DeleteInvestment) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Investment.Delete(ctx, a.UserID, a.InvestmentID)
}
