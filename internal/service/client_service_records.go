package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientRecordService struct {
	records  store.LocalRecordRepository
	notifier ChangeNotifier
	clock    workers.Clock
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClientRecordService returns a ClientRecordService writing to records and
// reporting every mutation to notifier.
func NewClientRecordService(records store.LocalRecordRepository, notifier ChangeNotifier, clock workers.Clock, logger *logger.Logger) ClientRecordService {
	if clock == nil {
		clock = workers.RealClock()
	}
	return &clientRecordService{
		records:  records,
		notifier: notifier,
		clock:    clock,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (s *clientRecordService) CreateNote(ctx context.Context, title, text string) (models.Record, error) {
	record := models.NewNote(s.ids.New(), title, text, s.now())
	if err := s.records.Upsert(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("save note: %w", err)
	}

	s.notifier.OnLocalChange(record.ID, models.OpUpsert)
	return record, nil
}

// UpdateNote replaces the title and text of an existing note. The new
// timestamp is kept strictly after the previous one so that the edit wins
// last-writer-wins even when the wall clock stepped back.
func (s *clientRecordService) UpdateNote(ctx context.Context, id uuid.UUID, title, text string) (models.Record, error) {
	existing, err := s.records.Get(ctx, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("load note %s: %w", id, err)
	}
	if existing.Kind != models.KindNote {
		return models.Record{}, fmt.Errorf("%w: record %s is a %s", ErrInvalidDataProvided, id, existing.Kind)
	}

	modified := s.now()
	if !modified.After(existing.LastModified) {
		modified = existing.LastModified.Add(time.Millisecond)
	}

	record := models.NewNote(id, title, text, modified)
	if err = s.records.Upsert(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("save note %s: %w", id, err)
	}

	s.notifier.OnLocalChange(id, models.OpUpsert)
	return record, nil
}

func (s *clientRecordService) AddClipboardEntry(ctx context.Context, text string) (models.Record, error) {
	if strings.TrimSpace(text) == "" {
		return models.Record{}, fmt.Errorf("%w: empty clipboard text", ErrInvalidDataProvided)
	}

	record := models.NewClipboardEntry(s.ids.New(), text, s.now())
	if err := s.records.Upsert(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("save clipboard entry: %w", err)
	}

	s.notifier.OnLocalChange(record.ID, models.OpUpsert)
	return record, nil
}

// Delete removes the record locally. Deleting an unknown id is not an error
// but is still reported, so a delete racing a merge-created record reaches
// the server.
func (s *clientRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.records.Delete(ctx, id)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("delete record %s: %w", id, err)
	}

	s.notifier.OnLocalChange(id, models.OpDelete)
	return nil
}

func (s *clientRecordService) Get(ctx context.Context, id uuid.UUID) (models.Record, error) {
	return s.records.Get(ctx, id)
}

func (s *clientRecordService) List(ctx context.Context) ([]models.Record, error) {
	records, err := s.records.GetAll(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.List").Msg("failed to list records")
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// now truncates to milliseconds so the timestamp survives the JSON round
// trip through the server unchanged.
func (s *clientRecordService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Millisecond)
}
