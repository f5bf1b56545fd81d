package advisor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeOverview() *FinanceOverview {
	return &FinanceOverview{
		UserName: "Priya",
		Currency: "EUR",
		NetWorth: decimal.RequireFromString("1234.50"),
		Accounts: []AccountSummary{
			{Name: "Checking", Type: "Bank", Balance: decimal.RequireFromString("1500.00")},
			{Name: "Visa", Type: "Credit Card", Balance: decimal.RequireFromString("-265.50")},
		},
		RecentTransactions: []TransactionSummary{
			{
				Description: "Weekly shop",
				Category:    "Groceries",
				Amount:      decimal.RequireFromString("-52.30"),
				Date:        time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestFinanceContext(t *testing.T) {
	ctx := financeContext(makeOverview())

	assert.Contains(t, ctx, "Net worth: 1234.50")
	assert.Contains(t, ctx, "- Checking (Bank): 1500.00")
	assert.Contains(t, ctx, "- Visa (Credit Card): -265.50")
	assert.Contains(t, ctx, "- 2025-07-01 | Groceries | Weekly shop | -52.30")
}

func TestChatSystemPrompt(t *testing.T) {
	prompt := chatSystemPrompt(makeOverview())

	assert.Contains(t, prompt, "advisor for Priya")
	assert.Contains(t, prompt, "Amounts are in EUR")
	assert.Contains(t, prompt, "Net worth: 1234.50", "embeds the finance context")
}

func TestMonthForecast_Unmarshal(t *testing.T) {
	var parsed struct {
		Predictions []MonthForecast `json:"predictions"`
	}

	raw := `{"predictions":[{"month":"2025-08","predicted":850.25},{"month":"2025-09","predicted":790}]}`
	assert.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	assert.Len(t, parsed.Predictions, 2)
	assert.Equal(t, "2025-08", parsed.Predictions[0].Month)
	assert.True(t, parsed.Predictions[0].Predicted.Equal(decimal.RequireFromString("850.25")))
}
