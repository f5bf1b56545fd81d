package account

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type AccountType int8

const (
	AccountTypeBank AccountType = iota
	AccountTypeCash
	AccountTypeCreditCard
)

// Account represents an account record. CreditCard balances are stored as a
// negative number representing outstanding debt.
type Account struct {
	ID              uuid.UUID
	UserID          string
	Name            string
	Type            AccountType
	Balance         decimal.Decimal
	CreditLimit     decimal.NullDecimal
	BillingCycleDay *int
	CreatedAt       time.Time
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID          string
	Name            string
	Type            AccountType
	Balance         decimal.Decimal
	CreditLimit     decimal.NullDecimal
	BillingCycleDay *int
}

// AccountUpdate carries the mutable account fields. Nil fields are left
// untouched.
type AccountUpdate struct {
	Name            *string
	Type            *AccountType
	Balance         *decimal.Decimal
	CreditLimit     *decimal.Decimal
	BillingCycleDay *int
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// IAccountReader defines the read-side account storage operations.
//
//go:generate mockery --name IAccountReader --output . --inpackage
type IAccountReader interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*Account, error)
	List(ctx context.Context, userID string, filter *AccountFilter) ([]*Account, error)
	SumBalances(ctx context.Context, userID string) (decimal.Decimal, error)
}

// IAccountWriter defines the transactional account storage operations. All
// methods run against the transaction the Writer was created with.
//
//go:generate mockery --name IAccountWriter --output . --inpackage
type IAccountWriter interface {
	FindByIDForUpdate(ctx context.Context, userID string, id uuid.UUID) (*Account, error)
	Create(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	Update(ctx context.Context, userID string, id uuid.UUID, update *AccountUpdate) error
	UpdateBalance(ctx context.Context, userID string, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type accountRow struct {
	ID              uuid.UUID           `db:"id"`
	UserID          string              `db:"user_id"`
	Name            string              `db:"name"`
	Type            int16               `db:"type"`
	Balance         decimal.Decimal     `db:"balance"`
	CreditLimit     decimal.NullDecimal `db:"credit_limit"`
	BillingCycleDay sql.NullInt32       `db:"billing_cycle_day"`
	CreatedAt       time.Time           `db:"created_at"`
}

func rowToAccount(row accountRow) *Account {
	acct := &Account{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Type:        AccountType(row.Type),
		Balance:     row.Balance,
		CreditLimit: row.CreditLimit,
		CreatedAt:   row.CreatedAt,
	}
	if row.BillingCycleDay.Valid {
		day := int(row.BillingCycleDay.Int32)
		acct.BillingCycleDay = &day
	}
	return acct
}
