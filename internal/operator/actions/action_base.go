package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is one atomic ledger mutation. Perform runs inside a single
// database transaction: it must read every row it will touch (for update)
// before writing any of them, and must have no side effects outside the
// writer, so a rolled-back action leaves nothing behind.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
