package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
)

// Debt represents a borrow or lent record in the service layer.
type Debt struct {
	ID              uuid.UUID
	Counterparty    string
	Description     string
	OriginalAmount  decimal.Decimal
	RemainingAmount decimal.Decimal
	Settled         bool
	CreatedAt       time.Time
	SettledDate     *time.Time
	Settlements     []Settlement
}

// Settlement is one payment event against a debt.
type Settlement struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// DebtService handles debt read-side business logic.
type DebtService struct {
	storage *storage.Storage
}

// NewDebtService creates a new DebtService.
func NewDebtService(store *storage.Storage) *DebtService {
	return &DebtService{storage: store}
}

// ListBorrows returns the user's borrow records, newest first.
func (s *DebtService) ListBorrows(ctx context.Context, userID string) ([]Debt, error) {
	return s.list(ctx, userID, debt.KindBorrow)
}

// ListLent returns the user's lent records, newest first.
func (s *DebtService) ListLent(ctx context.Context, userID string) ([]Debt, error) {
	return s.list(ctx, userID, debt.KindLent)
}

func (s *DebtService) list(ctx context.Context, userID string, kind debt.Kind) ([]Debt, error) {
	rows, err := s.storage.Debts.List(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	debts := make([]Debt, len(rows))
	for i, row := range rows {
		settlements := make([]Settlement, len(row.Settlements))
		for j, settlement := range row.Settlements {
			settlements[j] = Settlement{
				ID:        settlement.ID,
				Amount:    settlement.Amount,
				CreatedAt: settlement.CreatedAt,
			}
		}
		debts[i] = Debt{
			ID:              row.ID,
			Counterparty:    row.Counterparty,
			Description:     row.Description,
			OriginalAmount:  row.OriginalAmount,
			RemainingAmount: row.RemainingAmount,
			Settled:         row.Status == debt.StatusSettled,
			CreatedAt:       row.CreatedAt,
			SettledDate:     row.SettledDate,
			Settlements:     settlements,
		}
	}
	return debts, nil
}
