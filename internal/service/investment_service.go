package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/marketdata"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Holding is a purchased position enriched with live market data. The market
// fields are zero and Quoted is false when no quote was available.
type Holding struct {
	ID            uuid.UUID
	Symbol        string
	Name          string
	Quantity      decimal.Decimal
	PurchaseValue decimal.Decimal
	PurchaseDate  time.Time

	Quoted        bool
	CurrentPrice  decimal.Decimal
	CurrentValue  decimal.Decimal
	GainLoss      decimal.Decimal
	DayChangeType marketdata.ChangeType
}

// InvestmentService handles holding read-side business logic.
type InvestmentService struct {
	storage *storage.Storage
	market  marketdata.IMarketData
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(store *storage.Storage, market marketdata.IMarketData) *InvestmentService {
	return &InvestmentService{storage: store, market: market}
}

// ListHoldings returns the user's holdings enriched with live quotes. A
// failed quote fetch degrades to unquoted holdings rather than an error.
func (s *InvestmentService) ListHoldings(ctx context.Context, userID string) ([]Holding, error) {
	rows, err := s.storage.Investments.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	symbols := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if !seen[row.Symbol] {
			seen[row.Symbol] = true
			symbols = append(symbols, row.Symbol)
		}
	}

	quotes, err := s.market.Quotes(ctx, symbols)
	if err != nil {
		logrus.WithError(err).Warn("service.InvestmentService.ListHoldings.quotes")
		quotes = nil
	}

	holdings := make([]Holding, len(rows))
	for i, row := range rows {
		holding := Holding{
			ID:            row.ID,
			Symbol:        row.Symbol,
			Name:          row.Name,
			Quantity:      row.Quantity,
			PurchaseValue: row.PurchaseValue,
			PurchaseDate:  row.PurchaseDate,
		}
		if quote, ok := quotes[row.Symbol]; ok {
			holding.Quoted = true
			holding.CurrentPrice = quote.Price
			holding.CurrentValue = quote.Price.Mul(row.Quantity)
			holding.GainLoss = holding.CurrentValue.Sub(row.PurchaseValue)
			holding.DayChangeType = quote.ChangeType
		}
		holdings[i] = holding
	}
	return holdings, nil
}

// SearchSymbols looks up market symbols matching the query.
func (s *InvestmentService) SearchSymbols(ctx context.Context, query string) ([]marketdata.SearchResult, error) {
	return s.market.Search(ctx, query)
}
