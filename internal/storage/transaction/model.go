package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Well-known categories written by the ledger engine. Expense transactions
// additionally use free-form categories chosen by the user.
const (
	CategoryIncome        = "Income"
	CategoryBorrowed      = "Borrowed"
	CategoryLent          = "Lent"
	CategorySettlement    = "Settlement"
	CategoryReimbursement = "Reimbursement"
	CategoryTransfer      = "Transfer"
	CategoryFees          = "Fees"
)

// Transaction is an immutable ledger entry. Positive amounts are inflows,
// negative amounts are outflows. CreatedAt is assigned by the database clock,
// never the caller's.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      string          `db:"user_id"`
	AccountID   uuid.UUID       `db:"account_id"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for appending a new ledger entry.
type TransactionCreate struct {
	UserID      string
	AccountID   uuid.UUID
	Category    string
	Amount      decimal.Decimal
	Description string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID       *uuid.UUID
	Category        *string
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionReader defines the read-side transaction storage operations.
//
//go:generate mockery --name ITransactionReader --output . --inpackage
type ITransactionReader interface {
	List(ctx context.Context, userID string, filter *TransactionFilter) ([]*Transaction, error)
}

// ITransactionWriter defines the transactional append operations. Ledger
// entries are append-only: there is no update or delete.
//
//go:generate mockery --name ITransactionWriter --output . --inpackage
type ITransactionWriter interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
}
