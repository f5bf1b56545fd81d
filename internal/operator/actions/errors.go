package actions

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when a referenced account does not exist
	// in the caller's ledger.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDebtNotFound is returned when a referenced borrow or lent record
	// does not exist in the caller's ledger.
	ErrDebtNotFound = errors.New("debt record not found")
	// ErrInsufficientFunds is returned when a payment would overdraw the
	// source account on an operation that disallows it.
	ErrInsufficientFunds = errors.New("insufficient balance in source account")
	// ErrInvalidAmount is returned for non-positive payments and for payments
	// exceeding the remaining debt beyond the settlement tolerance.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidAccountType is returned when an operation is restricted to a
	// specific account type, such as bill payments to credit cards.
	ErrInvalidAccountType = errors.New("operation not allowed for this account type")
)

var (
	// settlementTolerance absorbs the floating-point drift the feed data
	// carries when a payment is compared against the remaining debt.
	settlementTolerance = decimal.NewFromFloat(0.001)
	// reconcileThreshold is the smallest bill-payment discrepancy that gets
	// its own adjustment transaction.
	reconcileThreshold = decimal.NewFromFloat(0.01)
)
