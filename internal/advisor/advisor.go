// Package advisor generates financial advice and expense forecasts from a
// user's ledger data using the OpenAI chat API.
package advisor

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AccountSummary is the slice of account state shared with the model.
type AccountSummary struct {
	Name    string
	Type    string
	Balance decimal.Decimal
}

// TransactionSummary is one recent transaction shared with the model.
type TransactionSummary struct {
	Description string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
}

// FinanceOverview is everything the model is allowed to see about a user.
type FinanceOverview struct {
	UserName           string
	Currency           string
	NetWorth           decimal.Decimal
	Accounts           []AccountSummary
	RecentTransactions []TransactionSummary
}

// Message is one prior turn of an advice conversation.
type Message struct {
	Role    string
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MonthForecast is one month of predicted spending.
type MonthForecast struct {
	Month     string          `json:"month"`
	Predicted decimal.Decimal `json:"predicted"`
}

// IAdvisor defines the generative operations.
//
//go:generate mockery --name IAdvisor --output . --inpackage
type IAdvisor interface {
	Chat(ctx context.Context, overview *FinanceOverview, history []Message, message string) (string, error)
	PredictExpenses(ctx context.Context, overview *FinanceOverview) ([]MonthForecast, error)
}
