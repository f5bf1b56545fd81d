package actions

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type writerMocks struct {
	Account     *account.MockIAccountWriter
	Transaction *transaction.MockITransactionWriter
	Debt        *debt.MockIDebtWriter
}

func newTestWriter(t *testing.T) (*storage.Writer, *writerMocks) {
	t.Helper()
	mocks := &writerMocks{
		Account:     account.NewMockIAccountWriter(t),
		Transaction: transaction.NewMockITransactionWriter(t),
		Debt:        debt.NewMockIDebtWriter(t),
	}
	writer := &storage.Writer{
		Account:     mocks.Account,
		Transaction: mocks.Transaction,
		Debt:        mocks.Debt,
	}
	return writer, mocks
}

func makeBankAccount(userID string, balance string) *account.Account {
	return &account.Account{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  userID,
		Name:    "Checking",
		Type:    account.AccountTypeBank,
		Balance: decimal.RequireFromString(balance),
	}
}

func makeCreditCard(userID string, balance string) *account.Account {
	limit := decimal.NewNullDecimal(decimal.RequireFromString("5000"))
	day := 15
	return &account.Account{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          userID,
		Name:            "Visa",
		Type:            account.AccountTypeCreditCard,
		Balance:         decimal.RequireFromString(balance),
		CreditLimit:     limit,
		BillingCycleDay: &day,
	}
}

func makeDebt(userID string, kind debt.Kind, counterparty, remaining string) *debt.Debt {
	amount := decimal.RequireFromString(remaining)
	return &debt.Debt{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          userID,
		Kind:            kind,
		Counterparty:    counterparty,
		Description:     "Direct loan",
		OriginalAmount:  amount,
		RemainingAmount: amount,
		Status:          debt.StatusOutstanding,
	}
}
