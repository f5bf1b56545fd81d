// Package marketdata fetches live stock quotes, symbol search results and
// historical closes from the Yahoo Finance API on RapidAPI.
package marketdata

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ChangeType classifies a quote's daily move for display purposes.
type ChangeType string

const (
	ChangeUp   ChangeType = "up"
	ChangeDown ChangeType = "down"
	ChangeFlat ChangeType = "flat"
)

// Quote is a live market quote for one symbol.
type Quote struct {
	Symbol        string
	Name          string
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
	ChangeType    ChangeType
}

// SearchResult is one symbol match from autocomplete search.
type SearchResult struct {
	Symbol   string
	Name     string
	Exchange string
	Type     string
}

// ClosePoint is one day's closing price.
type ClosePoint struct {
	Date  time.Time
	Close decimal.Decimal
}

// IMarketData defines the quote provider operations.
//
//go:generate mockery --name IMarketData --output . --inpackage
type IMarketData interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
	Quotes(ctx context.Context, symbols []string) (map[string]Quote, error)
	HistoricalClose(ctx context.Context, symbol string, from, to time.Time) ([]ClosePoint, error)
}
