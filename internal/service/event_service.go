package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventsnow/internal/cache"
	apperrors "eventsnow/internal/errors"
	"eventsnow/internal/model"
	"eventsnow/internal/repository"
)

const eventListTTL = time.Minute

// EventService handles event upload and lookup.
type EventService interface {
	Upload(ctx context.Context, event *model.Event) (*model.Event, error)
	ListByType(ctx context.Context, eventType model.EventType) ([]model.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
}

type eventService struct {
	events repository.EventRepository
	cache  *cache.Client
}

// NewEventService builds an EventService with repository and cache.
func NewEventService(events repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{events: events, cache: cache}
}

func listCacheKey(eventType model.EventType) string {
	return fmt.Sprintf("events:%s", eventType)
}

// Upload persists a new event after checking the name is not taken.
func (s *eventService) Upload(ctx context.Context, event *model.Event) (*model.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	existing, err := s.events.FindByName(ctx, event.Name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEventExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check event existence: %w", err)
	}

	if err := s.events.Create(ctx, event); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEventExists
		}
		return nil, fmt.Errorf("create event: %w", err)
	}

	_ = s.cache.Delete(ctx, listCacheKey(event.Type))
	return event, nil
}

// ListByType returns all events of the given type, read through the cache.
func (s *eventService) ListByType(ctx context.Context, eventType model.EventType) ([]model.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	key := listCacheKey(eventType)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.events.ListByType(ctx, eventType)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	if payload, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, key, payload, eventListTTL)
	}
	return events, nil
}

// GetByID fetches a single event.
func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}
