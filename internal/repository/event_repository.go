package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventsnow/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	FindByName(ctx context.Context, name string) (*model.Event, error)
	ListByType(ctx context.Context, eventType model.EventType) ([]model.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindByName(ctx context.Context, name string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListByType(ctx context.Context, eventType model.EventType) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Where("type = ?", eventType).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
