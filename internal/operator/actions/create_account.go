package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// CreateAccount opens a new account. Credit card balances are normalized to
// the stored sign convention: negative means outstanding debt, whatever sign
// the caller supplied.
type CreateAccount struct {
	UserID          string
	Name            string
	Type            account.AccountType
	Balance         decimal.Decimal
	CreditLimit     *decimal.Decimal
	BillingCycleDay *int
}

var _ IAction = (*CreateAccount)(nil)

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	create := &account.AccountCreate{
		UserID:  a.UserID,
		Name:    a.Name,
		Type:    a.Type,
		Balance: a.Balance,
	}

	if a.Type == account.AccountTypeCreditCard {
		create.Balance = a.Balance.Abs().Neg()
		creditLimit := decimal.Zero
		if a.CreditLimit != nil {
			creditLimit = *a.CreditLimit
		}
		create.CreditLimit = decimal.NewNullDecimal(creditLimit)
		billingCycleDay := 1
		if a.BillingCycleDay != nil {
			billingCycleDay = *a.BillingCycleDay
		}
		create.BillingCycleDay = &billingCycleDay
	}

	_, err := writer.Account.Create(ctx, create)
	return err
}
