package service

import (
	"github.com/carson-networks/ledger-server/internal/marketdata"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all read-side business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Debt        *DebtService
	Investment  *InvestmentService
	Finance     *FinanceService
}

// NewService creates a new Service with the given storage and quote provider.
func NewService(store *storage.Storage, market marketdata.IMarketData) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
		Debt:        NewDebtService(store),
		Investment:  NewInvestmentService(store, market),
		Finance:     NewFinanceService(store),
	}
}
