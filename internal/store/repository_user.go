package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles account creation and lookup against one users table, so the
// same type backs both identity stores.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db      *DB
	queries userQueries
	ids     IDGenerator
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserRepository] over table.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, table string, logger *logger.Logger, opts ...Option) UserRepository {
	logger.Debug().Str("table", table).Msg("creating user repository")

	o := newOptions(opts)
	return &userRepository{
		db:      db,
		queries: userQueries{builder: db.builder, table: table},
		ids:     o.ids,
		logger:  logger,
	}
}

// CreateUser assigns a new id to user and persists it.
//
// Error handling:
//   - unique constraint violation on name → [ErrNameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()

	query, args, err := r.queries.insertUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		kind := r.db.classify(err)
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("table", r.queries.table).
			Stringer("kind", kind).
			Msg("error inserting user")

		if kind == UniqueViolation {
			return models.User{}, ErrNameAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByName retrieves the account with the given name.
// Returns [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	return r.findUserBy(ctx, "name", name)
}

// FindUserByID retrieves the account with the given id.
// Returns [ErrUserNotFound] when there is none or the id is malformed.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUserBy(ctx, "id", userID)
}

func (r *userRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectUserBy(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		found models.User
		tier  string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found.UserID, &found.Name, &found.Secret, &tier)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil && r.db.classify(err) == InvalidInput:
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.findUserBy").
			Str("table", r.queries.table).
			Str("column", column).
			Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	found.Tier = models.Tier(tier)

	return found, nil
}
