package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeBank AccountType = iota
	AccountTypeCash
	AccountTypeCreditCard
)

// Account represents an account in the service layer.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            AccountType
	Balance         decimal.Decimal
	CreditLimit     *decimal.Decimal
	BillingCycleDay *int
	CreatedAt       time.Time
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountTypeFromStorage(t account.AccountType) AccountType {
	return AccountType(t)
}

func accountFromStorage(row *account.Account) Account {
	acct := Account{
		ID:              row.ID,
		Name:            row.Name,
		Type:            accountTypeFromStorage(row.Type),
		Balance:         row.Balance,
		BillingCycleDay: row.BillingCycleDay,
		CreatedAt:       row.CreatedAt,
	}
	if row.CreditLimit.Valid {
		limit := row.CreditLimit.Decimal
		acct.CreditLimit = &limit
	}
	return acct
}
