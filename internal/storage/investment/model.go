package investment

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Holding is one purchased position. Market value is never stored; it is
// joined in from live quotes at read time.
type Holding struct {
	ID            uuid.UUID       `db:"id"`
	UserID        string          `db:"user_id"`
	Symbol        string          `db:"symbol"`
	Name          string          `db:"name"`
	Quantity      decimal.Decimal `db:"quantity"`
	PurchaseValue decimal.Decimal `db:"purchase_value"`
	PurchaseDate  time.Time       `db:"purchase_date"`
}

// HoldingCreate is the input for recording a new position.
type HoldingCreate struct {
	UserID        string
	Symbol        string
	Name          string
	Quantity      decimal.Decimal
	PurchaseValue decimal.Decimal
	PurchaseDate  time.Time
}

// IInvestmentReader defines the read-side holding storage operations.
//
//go:generate mockery --name IInvestmentReader --output . --inpackage
type IInvestmentReader interface {
	List(ctx context.Context, userID string) ([]*Holding, error)
}

// IInvestmentWriter defines the transactional holding storage operations.
//
//go:generate mockery --name IInvestmentWriter --output . --inpackage
type IInvestmentWriter interface {
	Create(ctx context.Context, create *HoldingCreate) (uuid.UUID, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
