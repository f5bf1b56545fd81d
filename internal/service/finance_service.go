package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/advisor"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const overviewTransactionCount = 5

// FinanceService assembles the snapshot of a user's finances shared with the
// advisor model.
type FinanceService struct {
	storage *storage.Storage
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(store *storage.Storage) *FinanceService {
	return &FinanceService{storage: store}
}

// Overview builds the user's finance snapshot: net worth, account balances
// and their most recent transactions.
func (s *FinanceService) Overview(ctx context.Context, userID, userName string) (*advisor.FinanceOverview, error) {
	netWorth, err := s.storage.Accounts.SumBalances(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.storage.Accounts.List(ctx, userID, &account.AccountFilter{Limit: defaultAccountLimit})
	if err != nil {
		return nil, err
	}

	transactions, err := s.storage.Transactions.List(ctx, userID, &transaction.TransactionFilter{
		Limit: overviewTransactionCount,
	})
	if err != nil {
		return nil, err
	}

	prefs, err := s.storage.Users.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &advisor.FinanceOverview{
		UserName: userName,
		Currency: prefs.Currency,
		NetWorth: netWorth,
	}
	for _, acct := range accounts {
		overview.Accounts = append(overview.Accounts, advisor.AccountSummary{
			Name:    acct.Name,
			Type:    accountTypeName(acct.Type),
			Balance: acct.Balance,
		})
	}
	// the limit+1 pagination probe can return one extra row
	if len(transactions) > overviewTransactionCount {
		transactions = transactions[:overviewTransactionCount]
	}
	for _, tx := range transactions {
		overview.RecentTransactions = append(overview.RecentTransactions, advisor.TransactionSummary{
			Description: tx.Description,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Date:        tx.CreatedAt,
		})
	}
	return overview, nil
}

func accountTypeName(t account.AccountType) string {
	switch t {
	case account.AccountTypeCash:
		return "Cash"
	case account.AccountTypeCreditCard:
		return "Credit Card"
	default:
		return "Bank"
	}
}
