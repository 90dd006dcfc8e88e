package store

import (
	"github.com/MKhiriev/go-lms-offline/internal/logger"
)

// hydrationLimit bounds the number of modules whose chapters are loaded
// concurrently.
const hydrationLimit = 4

// localStore is the SQLite-backed implementation of [LocalStore].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type localStore struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalStore constructs a [LocalStore] backed by the provided database
// connection and logger.
func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	logger.Debug().Msg("creating local store")
	return &localStore{
		db:     db,
		logger: logger,
	}
}

// withTx returns a store bound to tx.
func (s *localStore) withTx(tx *DB) *localStore {
	return &localStore{db: tx, logger: s.logger}
}
