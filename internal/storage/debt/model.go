package debt

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Kind distinguishes the two debt directions: a Borrow is money the user owes
// a lender, a Lent is money a borrower owes the user.
type Kind int8

const (
	KindBorrow Kind = iota
	KindLent
)

type Status int8

const (
	StatusOutstanding Status = iota
	StatusSettled
)

// Debt is a borrow or lent record. RemainingAmount only ever decreases, via
// appended settlements; once it reaches zero the record is settled for good.
type Debt struct {
	ID              uuid.UUID
	UserID          string
	Kind            Kind
	Counterparty    string
	Description     string
	OriginalAmount  decimal.Decimal
	RemainingAmount decimal.Decimal
	Status          Status
	CreatedAt       time.Time
	SettledDate     *time.Time
	Settlements     []*Settlement
}

// Settlement is one payment event against a debt. Append-only.
type Settlement struct {
	ID        uuid.UUID       `db:"id"`
	DebtID    uuid.UUID       `db:"debt_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// DebtCreate is the input for opening a new outstanding debt. RemainingAmount
// always starts equal to OriginalAmount.
type DebtCreate struct {
	UserID         string
	Kind           Kind
	Counterparty   string
	Description    string
	OriginalAmount decimal.Decimal
}

// IDebtReader defines the read-side debt storage operations.
//
//go:generate mockery --name IDebtReader --output . --inpackage
type IDebtReader interface {
	List(ctx context.Context, userID string, kind Kind) ([]*Debt, error)
}

// IDebtWriter defines the transactional debt storage operations.
//
//go:generate mockery --name IDebtWriter --output . --inpackage
type IDebtWriter interface {
	FindByIDForUpdate(ctx context.Context, userID string, kind Kind, id uuid.UUID) (*Debt, error)
	Create(ctx context.Context, create *DebtCreate) (uuid.UUID, error)
	AppendSettlement(ctx context.Context, debtID uuid.UUID, amount decimal.Decimal) (uuid.UUID, error)
	UpdateRemaining(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error
	MarkSettled(ctx context.Context, id uuid.UUID) error
}

type debtRow struct {
	ID              uuid.UUID       `db:"id"`
	UserID          string          `db:"user_id"`
	Kind            int16           `db:"kind"`
	Counterparty    string          `db:"counterparty"`
	Description     string          `db:"description"`
	OriginalAmount  decimal.Decimal `db:"original_amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	Status          int16           `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	SettledDate     sql.NullTime    `db:"settled_date"`
}

func rowToDebt(row debtRow) *Debt {
	d := &Debt{
		ID:              row.ID,
		UserID:          row.UserID,
		Kind:            Kind(row.Kind),
		Counterparty:    row.Counterparty,
		Description:     row.Description,
		OriginalAmount:  row.OriginalAmount,
		RemainingAmount: row.RemainingAmount,
		Status:          Status(row.Status),
		CreatedAt:       row.CreatedAt,
	}
	if row.SettledDate.Valid {
		settled := row.SettledDate.Time
		d.SettledDate = &settled
	}
	return d
}
