package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

func TestCreateAccount_Bank(t *testing.T) {
	writer, mocks := newTestWriter(t)

	balance := decimal.RequireFromString("1500.00")
	mocks.Account.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *account.AccountCreate) bool {
		return c.UserID == "user-1" &&
			c.Name == "Checking" &&
			c.Type == account.AccountTypeBank &&
			c.Balance.Equal(balance) &&
			!c.CreditLimit.Valid &&
			c.BillingCycleDay == nil
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := &CreateAccount{
		UserID:  "user-1",
		Name:    "Checking",
		Type:    account.AccountTypeBank,
		Balance: balance,
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestCreateAccount_CreditCardNormalizesBalance(t *testing.T) {
	writer, mocks := newTestWriter(t)

	limit := decimal.RequireFromString("5000.00")
	day := 20
	// The caller said 750 in debt; stored as -750 either way.
	mocks.Account.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *account.AccountCreate) bool {
		return c.Type == account.AccountTypeCreditCard &&
			c.Balance.Equal(decimal.RequireFromString("-750.00")) &&
			c.CreditLimit.Valid && c.CreditLimit.Decimal.Equal(limit) &&
			c.BillingCycleDay != nil && *c.BillingCycleDay == 20
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := &CreateAccount{
		UserID:          "user-1",
		Name:            "Visa",
		Type:            account.AccountTypeCreditCard,
		Balance:         decimal.RequireFromString("750.00"),
		CreditLimit:     &limit,
		BillingCycleDay: &day,
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestCreateAccount_CreditCardDefaults(t *testing.T) {
	writer, mocks := newTestWriter(t)

	mocks.Account.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *account.AccountCreate) bool {
		return c.CreditLimit.Valid && c.CreditLimit.Decimal.IsZero() &&
			c.BillingCycleDay != nil && *c.BillingCycleDay == 1
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := &CreateAccount{
		UserID:  "user-1",
		Name:    "Visa",
		Type:    account.AccountTypeCreditCard,
		Balance: decimal.Zero,
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}
