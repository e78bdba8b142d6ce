package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
)

// Storages groups the repositories of the application over one pool.
type Storages struct {
	// AuthUsers is the identity store of plain authentication.
	AuthUsers UserRepository
	// TokenUsers is the identity store of token authentication.
	TokenUsers UserRepository
	// Events is the unscoped record store.
	Events RecordRepository
	// OwnedEvents is the record store scoped to TokenUsers accounts.
	OwnedEvents RecordRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies pending
// migrations and builds every repository.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger, opts ...Option) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log, opts...), nil
}

func newStorages(db *DB, log *logger.Logger, opts ...Option) *Storages {
	return &Storages{
		AuthUsers:   NewUserRepository(db, authUsersTable, log, opts...),
		TokenUsers:  NewUserRepository(db, tokenUsersTable, log, opts...),
		Events:      NewRecordRepository(db, eventsTable, log, opts...),
		OwnedEvents: NewOwnedRecordRepository(db, ownedEventsTable, ownerColumn, log, opts...),
		db:          db,
	}
}

// Ping verifies that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
