package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
)

// Storage is the root of the persistence layer. Reads go through the embedded
// Reader; every mutation goes through a Writer obtained from Write, which
// scopes it to one database transaction.
type Storage struct {
	db bob.DB
	*Reader
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage.open")
	}

	bdb := bob.NewDB(db)
	return &Storage{
		db:     bdb,
		Reader: NewReader(bdb),
	}
}

// Write begins a transaction and returns a Writer bound to it. The caller
// must finish with Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
