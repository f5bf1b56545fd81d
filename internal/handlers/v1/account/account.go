package account

import (
	"fmt"
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account is the API response model for an account.
type Account struct {
	ID              string  `json:"id" doc:"Account UUID"`
	Name            string  `json:"name" doc:"Display name"`
	Type            string  `json:"type" enum:"bank,cash,creditCard" doc:"Account type"`
	Balance         string  `json:"balance" doc:"Decimal balance, negative for credit card debt"`
	CreditLimit     *string `json:"creditLimit,omitempty" doc:"Decimal credit limit, credit cards only"`
	BillingCycleDay *int    `json:"billingCycleDay,omitempty" doc:"Day of month the billing cycle starts"`
	CreatedAt       string  `json:"createdAt" doc:"RFC3339 creation time"`
}

const (
	typeBank       = "bank"
	typeCash       = "cash"
	typeCreditCard = "creditCard"
)

func parseAccountType(s string) (account.AccountType, error) {
	switch s {
	case typeBank:
		return account.AccountTypeBank, nil
	case typeCash:
		return account.AccountTypeCash, nil
	case typeCreditCard:
		return account.AccountTypeCreditCard, nil
	default:
		return 0, fmt.Errorf("unknown account type %q", s)
	}
}

func accountTypeString(t service.AccountType) string {
	switch t {
	case service.AccountTypeCash:
		return typeCash
	case service.AccountTypeCreditCard:
		return typeCreditCard
	default:
		return typeBank
	}
}

func fromService(acct service.Account) Account {
	out := Account{
		ID:              acct.ID.String(),
		Name:            acct.Name,
		Type:            accountTypeString(acct.Type),
		Balance:         acct.Balance.String(),
		BillingCycleDay: acct.BillingCycleDay,
		CreatedAt:       acct.CreatedAt.Format(time.RFC3339),
	}
	if acct.CreditLimit != nil {
		limit := acct.CreditLimit.String()
		out.CreditLimit = &limit
	}
	return out
}
