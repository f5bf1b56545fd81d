package debt

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Debt is the API response model for a borrow or lent record.
type Debt struct {
	ID              string       `json:"id" doc:"Debt UUID"`
	Counterparty    string       `json:"counterparty" doc:"Who the money is owed to or by"`
	Description     string       `json:"description" doc:"Description of the debt"`
	OriginalAmount  string       `json:"originalAmount" doc:"Decimal amount originally owed"`
	RemainingAmount string       `json:"remainingAmount" doc:"Decimal amount still outstanding"`
	Settled         bool         `json:"settled" doc:"True once fully repaid"`
	CreatedAt       string       `json:"createdAt" doc:"RFC3339 creation time"`
	SettledDate     *string      `json:"settledDate,omitempty" doc:"RFC3339 settlement time, set once"`
	Settlements     []Settlement `json:"settlements" doc:"Payment events against the debt, oldest first"`
}

// Settlement is the API response model for one payment against a debt.
type Settlement struct {
	ID        string `json:"id" doc:"Settlement UUID"`
	Amount    string `json:"amount" doc:"Decimal amount paid"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 payment time"`
}

func fromService(d service.Debt) Debt {
	out := Debt{
		ID:              d.ID.String(),
		Counterparty:    d.Counterparty,
		Description:     d.Description,
		OriginalAmount:  d.OriginalAmount.String(),
		RemainingAmount: d.RemainingAmount.String(),
		Settled:         d.Settled,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
		Settlements:     make([]Settlement, len(d.Settlements)),
	}
	if d.SettledDate != nil {
		settled := d.SettledDate.Format(time.RFC3339)
		out.SettledDate = &settled
	}
	for i, s := range d.Settlements {
		out.Settlements[i] = Settlement{
			ID:        s.ID.String(),
			Amount:    s.Amount.String(),
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
