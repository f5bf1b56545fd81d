package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/investment"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

type Reader struct {
	Accounts     account.IAccountReader
	Transactions transaction.ITransactionReader
	Debts        debt.IDebtReader
	Investments  investment.IInvestmentReader
	Users        user.IUserReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Debts:        debt.NewReader(exec),
		Investments:  investment.NewReader(exec),
		Users:        user.NewReader(exec),
	}
}
