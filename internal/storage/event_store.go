package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fathoor/calendra/internal/models"
)

// EventStore persists events in Postgres through GORM. Single-row
// operations ride on single statements and are atomic; InsertMany and
// DeleteByGroupID are best-effort batches.
type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventStore) InsertOne(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *EventStore) InsertMany(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&events).Error
}

// ReplaceByID overwrites every column of the row at id with event,
// returning how many rows matched.
func (s *EventStore) ReplaceByID(ctx context.Context, id uuid.UUID, event *models.Event) (int64, error) {
	event.ID = id
	result := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(event)
	return result.RowsAffected, result.Error
}

func (s *EventStore) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Event{})
	return result.RowsAffected, result.Error
}

func (s *EventStore) DeleteByGroupID(ctx context.Context, groupID uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&models.Event{})
	return result.RowsAffected, result.Error
}
