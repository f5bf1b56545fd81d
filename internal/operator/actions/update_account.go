package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// UpdateAccount edits account attributes. A balance update on a credit card
// is re-normalized to the stored negative sign convention.
type UpdateAccount struct {
	UserID    string
	AccountID uuid.UUID
	Update    account.AccountUpdate
}

var _ IAction = (*UpdateAccount)(nil)

func (a *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.AccountID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAccountNotFound
	}

	update := a.Update
	if update.Balance != nil {
		accountType := existing.Type
		if update.Type != nil {
			accountType = *update.Type
		}
		if accountType == account.AccountTypeCreditCard {
			balance := update.Balance.Abs().Neg()
			update.Balance = &balance
		}
	}

	return writer.Account.Update(ctx, a.UserID, a.AccountID, &update)
}
