package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/debt"
	"github.com/carson-networks/ledger-server/internal/storage/investment"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// Writer bundles the per-entity writers over one transaction. Ledger actions
// receive a Writer, never the raw transaction.
type Writer struct {
	tx          bob.Tx
	Account     account.IAccountWriter
	Transaction transaction.ITransactionWriter
	Debt        debt.IDebtWriter
	Investment  investment.IInvestmentWriter
	User        user.IUserWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Debt:        debt.NewWriter(tx),
		Investment:  investment.NewWriter(tx),
		User:        user.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
