package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/investment"
)

func newInvestmentTestWriter(t *testing.T) (*storage.Writer, *investment.MockIInvestmentWriter) {
	t.Helper()
	mockWriter := investment.NewMockIInvestmentWriter(t)
	return &storage.Writer{Investment: mockWriter}, mockWriter
}

func TestAddInvestment_Success(t *testing.T) {
	writer, mockWriter := newInvestmentTestWriter(t)

	purchaseDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	mockWriter.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *investment.HoldingCreate) bool {
		return c.UserID == "user-1" &&
			c.Symbol == "AAPL" &&
			c.Name == "Apple Inc." &&
			c.Quantity.Equal(decimal.RequireFromString("2.5")) &&
			c.PurchaseValue.Equal(decimal.RequireFromString("430.00")) &&
			c.PurchaseDate.Equal(purchaseDate)
	})).Return(uuid.Must(uuid.NewV4()), nil)

	action := &AddInvestment{
		UserID:        "user-1",
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Quantity:      decimal.RequireFromString("2.5"),
		PurchaseValue: decimal.RequireFromString("430.00"),
		PurchaseDate:  purchaseDate,
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestAddInvestment_NonPositiveQuantity(t *testing.T) {
	writer, _ := newInvestmentTestWriter(t)

	action := &AddInvestment{
		UserID:        "user-1",
		Symbol:        "AAPL",
		Quantity:      decimal.Zero,
		PurchaseValue: decimal.RequireFromString("100.00"),
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAddInvestment_NegativePurchaseValue(t *testing.T) {
	writer, _ := newInvestmentTestWriter(t)

	action := &AddInvestment{
		UserID:        "user-1",
		Symbol:        "AAPL",
		Quantity:      decimal.RequireFromString("1"),
		PurchaseValue: decimal.RequireFromString("-10.00"),
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDeleteInvestment_Success(t *testing.T) {
	writer, mockWriter := newInvestmentTestWriter(t)

	id := uuid.Must(uuid.NewV4())
	mockWriter.EXPECT().Delete(mock.Anything, "user-1", id).Return(nil)

	action := &DeleteInvestment{UserID: "user-1", InvestmentID: id}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
}
