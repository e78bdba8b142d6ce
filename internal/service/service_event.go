package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/store"
	"github.com/MKhiriev/go-event-keeper/models"
)

// recordService holds the record operations shared by the unscoped and the
// owner-scoped services. ownerID is ignored by an unscoped repository.
type recordService struct {
	recordRepository store.RecordRepository

	logger *logger.Logger
}

func (s *recordService) create(ctx context.Context, ownerID string, request models.CreateRecordRequest) (models.Record, error) {
	record, err := s.recordRepository.CreateRecord(ctx, models.Record{
		OwnerID:     ownerID,
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		return models.Record{}, s.wrap(ctx, "create", "", err)
	}

	return record, nil
}

func (s *recordService) get(ctx context.Context, ownerID, id string) (models.Record, error) {
	record, err := s.recordRepository.GetRecord(ctx, ownerID, id)
	if err != nil {
		return models.Record{}, s.wrap(ctx, "get", id, err)
	}

	return record, nil
}

// update applies request and re-reads the record. The two steps are not
// atomic: a delete in between surfaces as ErrRecordNotFound.
func (s *recordService) update(ctx context.Context, ownerID, id string, request models.UpdateRecordRequest) (models.Record, error) {
	err := s.recordRepository.UpdateRecord(ctx, models.RecordUpdate{
		ID:          id,
		OwnerID:     ownerID,
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		return models.Record{}, s.wrap(ctx, "update", id, err)
	}

	return s.get(ctx, ownerID, id)
}

func (s *recordService) delete(ctx context.Context, ownerID, id string) error {
	if err := s.recordRepository.DeleteRecord(ctx, ownerID, id); err != nil {
		return s.wrap(ctx, "delete", id, err)
	}

	return nil
}

// search rejects an empty term; a search never lists everything. A
// whitespace term is searched as given.
func (s *recordService) search(ctx context.Context, ownerID, term string) ([]models.Record, error) {
	if term == "" {
		return nil, ErrMissingSearchTerm
	}

	records, err := s.recordRepository.SearchRecords(ctx, ownerID, term)
	if err != nil {
		return nil, s.wrap(ctx, "search", "", err)
	}

	return records, nil
}

// wrap translates a repository error into the service error kinds.
func (s *recordService) wrap(ctx context.Context, op, id string, err error) error {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return fmt.Errorf("%w: id %q", ErrRecordNotFound, id)
	case errors.Is(err, store.ErrOwnerRequired), errors.Is(err, store.ErrOwnerNotFound):
		return ErrUnauthorized
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "*recordService."+op).
		Str("record_id", id).
		Msg("record operation failed")
	return fmt.Errorf("%w: %w", ErrOperationFailed, err)
}

// eventService is the unscoped EventService.
type eventService struct {
	recordService
}

func NewEventService(recordRepository store.RecordRepository, logger *logger.Logger) EventService {
	return &eventService{recordService{recordRepository: recordRepository, logger: logger}}
}

func (s *eventService) Create(ctx context.Context, request models.CreateRecordRequest) (models.Record, error) {
	return s.create(ctx, "", request)
}

func (s *eventService) Get(ctx context.Context, id string) (models.Record, error) {
	return s.get(ctx, "", id)
}

func (s *eventService) Update(ctx context.Context, id string, request models.UpdateRecordRequest) (models.Record, error) {
	return s.update(ctx, "", id, request)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, "", id)
}

func (s *eventService) Search(ctx context.Context, term string) ([]models.Record, error) {
	return s.search(ctx, "", term)
}

// ownedEventService is the OwnedEventService. Every call is constrained to
// caller.UserID; a zero caller is rejected before storage is touched.
type ownedEventService struct {
	recordService
}

func NewOwnedEventService(recordRepository store.RecordRepository, logger *logger.Logger) OwnedEventService {
	return &ownedEventService{recordService{recordRepository: recordRepository, logger: logger}}
}

func (s *ownedEventService) Create(ctx context.Context, caller models.Caller, request models.CreateRecordRequest) (models.Record, error) {
	if caller.IsZero() {
		return models.Record{}, ErrUnauthorized
	}
	return s.create(ctx, caller.UserID, request)
}

func (s *ownedEventService) Get(ctx context.Context, caller models.Caller, id string) (models.Record, error) {
	if caller.IsZero() {
		return models.Record{}, ErrUnauthorized
	}
	return s.get(ctx, caller.UserID, id)
}

func (s *ownedEventService) Update(ctx context.Context, caller models.Caller, id string, request models.UpdateRecordRequest) (models.Record, error) {
	if caller.IsZero() {
		return models.Record{}, ErrUnauthorized
	}
	return s.update(ctx, caller.UserID, id, request)
}

func (s *ownedEventService) Delete(ctx context.Context, caller models.Caller, id string) error {
	if caller.IsZero() {
		return ErrUnauthorized
	}
	return s.delete(ctx, caller.UserID, id)
}

func (s *ownedEventService) Search(ctx context.Context, caller models.Caller, term string) ([]models.Record, error) {
	if caller.IsZero() {
		return nil, ErrUnauthorized
	}
	return s.search(ctx, caller.UserID, term)
}
