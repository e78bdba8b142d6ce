package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/models"
)

// recordRepository is the database/sql implementation of [RecordRepository]
// for one record table. When its queries carry an owner column it is the
// owner-scoped store: every statement is filtered by owner and an empty
// owner is rejected with [ErrOwnerRequired].
type recordRepository struct {
	db      *DB
	queries recordQueries
	ids     IDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

// NewRecordRepository constructs an unscoped [RecordRepository] over table.
func NewRecordRepository(db *DB, table string, logger *logger.Logger, opts ...Option) RecordRepository {
	return newRecordRepository(db, table, "", logger, opts)
}

// NewOwnedRecordRepository constructs a [RecordRepository] over table whose
// statements are all constrained to ownerColumn.
func NewOwnedRecordRepository(db *DB, table, ownerColumn string, logger *logger.Logger, opts ...Option) RecordRepository {
	return newRecordRepository(db, table, ownerColumn, logger, opts)
}

func newRecordRepository(db *DB, table, ownerColumn string, logger *logger.Logger, opts []Option) *recordRepository {
	logger.Debug().Str("table", table).Str("owner_column", ownerColumn).Msg("creating record repository")

	o := newOptions(opts)
	return &recordRepository{
		db: db,
		queries: recordQueries{
			builder:     db.builder,
			table:       table,
			ownerColumn: ownerColumn,
		},
		ids:    o.ids,
		now:    o.now,
		logger: logger,
	}
}

func (r *recordRepository) checkOwner(ownerID string) error {
	if r.queries.scoped() && ownerID == "" {
		return ErrOwnerRequired
	}
	return nil
}

// CreateRecord assigns an id and both timestamps (from one clock reading)
// and persists record.
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if err := r.checkOwner(record.OwnerID); err != nil {
		return models.Record{}, err
	}
	if !r.queries.scoped() {
		record.OwnerID = ""
	}

	now := timestamp(r.now())
	record.ID = r.ids.Generate()
	record.CreatedAt = now
	record.UpdatedAt = now

	query, args, err := r.queries.insertRecord(record)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.CreateRecord").Msg("error building query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		kind := r.db.classify(err)
		log.Err(err).
			Str("func", "*recordRepository.CreateRecord").
			Str("table", r.queries.table).
			Stringer("kind", kind).
			Msg("error inserting record")

		if kind == ForeignKeyViolation {
			return models.Record{}, ErrOwnerNotFound
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// GetRecord returns the record with recordID. Returns [ErrRecordNotFound]
// when it does not exist or belongs to another owner.
func (r *recordRepository) GetRecord(ctx context.Context, ownerID, recordID string) (models.Record, error) {
	log := logger.FromContext(ctx)

	if err := r.checkOwner(ownerID); err != nil {
		return models.Record{}, err
	}

	query, args, err := r.queries.selectRecord(ownerID, recordID)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.GetRecord").Msg("error building query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Record{}, ErrRecordNotFound
	case err != nil && r.db.classify(err) == InvalidInput:
		return models.Record{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*recordRepository.GetRecord").
			Str("table", r.queries.table).
			Str("record_id", recordID).
			Msg("error querying record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	record.OwnerID = ownerID

	return record, nil
}

// UpdateRecord writes the non-nil fields of update and refreshes updated_at.
// Returns [ErrRecordNotFound] when no row was affected.
func (r *recordRepository) UpdateRecord(ctx context.Context, update models.RecordUpdate) error {
	log := logger.FromContext(ctx)

	if err := r.checkOwner(update.OwnerID); err != nil {
		return err
	}

	query, args, err := r.queries.updateRecord(update, timestamp(r.now()))
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.UpdateRecord").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*recordRepository.UpdateRecord", update.ID, query, args)
}

// DeleteRecord removes the record with recordID. Returns [ErrRecordNotFound]
// when no row was affected.
func (r *recordRepository) DeleteRecord(ctx context.Context, ownerID, recordID string) error {
	log := logger.FromContext(ctx)

	if err := r.checkOwner(ownerID); err != nil {
		return err
	}

	query, args, err := r.queries.deleteRecord(ownerID, recordID)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteRecord").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*recordRepository.DeleteRecord", recordID, query, args)
}

func (r *recordRepository) execAffectingOne(ctx context.Context, funcName, recordID, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classify(err) == InvalidInput {
			return ErrRecordNotFound
		}
		log.Err(err).
			Str("func", funcName).
			Str("table", r.queries.table).
			Str("record_id", recordID).
			Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("record_id", recordID).
			Msg("failed to get rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected == 0 {
		log.Debug().
			Str("func", funcName).
			Str("table", r.queries.table).
			Str("record_id", recordID).
			Msg("no rows affected: record not found")
		return ErrRecordNotFound
	}

	return nil
}

// SearchRecords returns the records whose title or description contains
// term, case-insensitively, ordered by creation. The result is never nil.
func (r *recordRepository) SearchRecords(ctx context.Context, ownerID, term string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if err := r.checkOwner(ownerID); err != nil {
		return nil, err
	}

	query, args, err := r.queries.searchRecords(ownerID, term)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.SearchRecords").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.SearchRecords").
			Str("table", r.queries.table).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*recordRepository.SearchRecords").
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		record.OwnerID = ownerID
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*recordRepository.SearchRecords").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var record models.Record
	if err := row.Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return models.Record{}, err
	}

	record.CreatedAt = record.CreatedAt.UTC()
	record.UpdatedAt = record.UpdatedAt.UTC()

	return record, nil
}
