package store

import (
	"context"

	"github.com/MKhiriev/go-event-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is an identity store: a durable registry of accounts with
// unique names.
type UserRepository interface {
	// CreateUser assigns an id to user and persists it.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByName(ctx context.Context, name string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// RecordRepository persists event records. An owner-scoped repository
// constrains every statement to ownerID and rejects an empty one; an
// unscoped repository ignores ownerID.
type RecordRepository interface {
	// CreateRecord assigns id and timestamps to record and persists it.
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	GetRecord(ctx context.Context, ownerID, recordID string) (models.Record, error)
	// UpdateRecord writes the non-nil fields of update and refreshes updated_at.
	UpdateRecord(ctx context.Context, update models.RecordUpdate) error
	DeleteRecord(ctx context.Context, ownerID, recordID string) error
	// SearchRecords returns records whose title or description contains term,
	// case-insensitively.
	SearchRecords(ctx context.Context, ownerID, term string) ([]models.Record, error)
}
