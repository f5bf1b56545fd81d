package investment

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Holding is the API response model for one investment position. The market
// fields are absent when no live quote was available.
type Holding struct {
	ID            string  `json:"id" doc:"Holding UUID"`
	Symbol        string  `json:"symbol" doc:"Market symbol"`
	Name          string  `json:"name" doc:"Instrument name"`
	Quantity      string  `json:"quantity" doc:"Decimal quantity held"`
	PurchaseValue string  `json:"purchaseValue" doc:"Decimal total paid at purchase"`
	PurchaseDate  string  `json:"purchaseDate" doc:"RFC3339 purchase date"`
	CurrentPrice  *string `json:"currentPrice,omitempty" doc:"Live decimal price per unit"`
	CurrentValue  *string `json:"currentValue,omitempty" doc:"Live decimal value of the position"`
	GainLoss      *string `json:"gainLoss,omitempty" doc:"Decimal gain or loss against the purchase value"`
	DayChangeType *string `json:"dayChangeType,omitempty" enum:"up,down,flat" doc:"Direction of today's move"`
}

func fromService(h service.Holding) Holding {
	out := Holding{
		ID:            h.ID.String(),
		Symbol:        h.Symbol,
		Name:          h.Name,
		Quantity:      h.Quantity.String(),
		PurchaseValue: h.PurchaseValue.String(),
		PurchaseDate:  h.PurchaseDate.Format(time.RFC3339),
	}
	if h.Quoted {
		price := h.CurrentPrice.String()
		value := h.CurrentValue.String()
		gainLoss := h.GainLoss.String()
		changeType := string(h.DayChangeType)
		out.CurrentPrice = &price
		out.CurrentValue = &value
		out.GainLoss = &gainLoss
		out.DayChangeType = &changeType
	}
	return out
}
