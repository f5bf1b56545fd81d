package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteAccount removes an account. Its historical transactions are kept and
// keep referencing the deleted id; there is deliberately no cascade.
type DeleteAccount struct {
	UserID    string
	AccountID uuid.UUID
}

var _ IAction = (*DeleteAccount)(nil)

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Account.FindByIDForUpdate(ctx, a.UserID, a.AccountID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAccountNotFound
	}
	return writer.Account.Delete(ctx, a.UserID, a.AccountID)
}
