package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

const defaultAccountLimit = 20

var ErrAccountNotFound = errors.New("account not found")

// AccountService handles account read-side business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves one of the user's accounts by ID.
func (s *AccountService) GetAccount(ctx context.Context, userID string, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrAccountNotFound
	}
	acct := accountFromStorage(row)
	return &acct, nil
}

// ListAccounts returns a page of the user's accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, userID string, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &account.AccountFilter{
		Limit:  limit,
		Offset: offset,
	}

	rows, err := s.storage.Accounts.List(ctx, userID, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(rows))
	for i, row := range rows {
		convertedAccounts[i] = accountFromStorage(row)
	}

	return convertedAccounts, nextCursor, nil
}

// NetWorth returns the sum of all the user's account balances.
func (s *AccountService) NetWorth(ctx context.Context, userID string) (decimal.Decimal, error) {
	return s.storage.Accounts.SumBalances(ctx, userID)
}
