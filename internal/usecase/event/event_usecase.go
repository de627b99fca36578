package event

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/discovery"
	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/logger"
	"github.com/gdugdh24/mpit2026-discovery/internal/repository"
)

// Classifier assigns a taxonomy category to an event. It never fails.
type Classifier interface {
	Classify(ctx context.Context, title, location string) domain.Category
}

type EventUseCase struct {
	eventRepo  repository.EventRepository
	classifier Classifier
	windowDays int
	now        func() time.Time
}

func NewEventUseCase(
	eventRepo repository.EventRepository,
	classifier Classifier,
	windowDays int,
	now func() time.Time,
) *EventUseCase {
	if now == nil {
		now = time.Now
	}
	return &EventUseCase{
		eventRepo:  eventRepo,
		classifier: classifier,
		windowDays: windowDays,
		now:        now,
	}
}

// CreateEventRequest represents event creation request
type CreateEventRequest struct {
	Title    string    `json:"title" binding:"required,min=2,max=200"`
	Location string    `json:"location" binding:"required,max=200"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
}

// ClassifyRequest represents a dry-run classification request
type ClassifyRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Location string `json:"location" binding:"max=200"`
}

// Create classifies a new event once and stores it.
func (uc *EventUseCase) Create(ctx context.Context, creatorID int, req *CreateEventRequest) (*domain.ScheduledEvent, error) {
	event := &domain.Event{
		CreatorID: creatorID,
		Title:     req.Title,
		Location:  req.Location,
		StartsAt:  req.StartsAt,
	}
	event.Category = uc.categorize(ctx, event.Record())

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int("event_id", event.ID).
		Str("category", event.Category.String()).
		Msg("event created")

	return uc.schedule(*event), nil
}

// Classify runs the classifier without storing anything.
func (uc *EventUseCase) Classify(ctx context.Context, req *ClassifyRequest) domain.Category {
	return uc.categorize(ctx, domain.EventRecord{Title: req.Title, Location: req.Location})
}

func (uc *EventUseCase) categorize(ctx context.Context, rec domain.EventRecord) domain.Category {
	return uc.classifier.Classify(ctx, rec.Title, rec.Location)
}

// Recategorize re-runs classification for an event left Uncategorized.
// Events that already have a real category are returned unchanged.
func (uc *EventUseCase) Recategorize(ctx context.Context, id int) (*domain.ScheduledEvent, error) {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.ParseCategory(string(event.Category)); ok {
		return uc.schedule(*event), nil
	}

	category := uc.categorize(ctx, event.Record())
	if category != domain.CategoryUncategorized {
		if err := uc.eventRepo.UpdateCategory(ctx, id, category); err != nil {
			return nil, fmt.Errorf("failed to update event category: %w", err)
		}
	}
	event.Category = category
	return uc.schedule(*event), nil
}

// Upcoming lists events starting today or later with their time label.
func (uc *EventUseCase) Upcoming(ctx context.Context, limit int) ([]domain.ScheduledEvent, error) {
	now := uc.now()
	y, m, d := now.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	events, err := uc.eventRepo.ListStartingFrom(ctx, startOfToday, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	scheduled := make([]domain.ScheduledEvent, 0, len(events))
	for _, e := range events {
		scheduled = append(scheduled, domain.ScheduledEvent{Event: e, When: discovery.Bucket(e.StartsAt, now)})
	}
	return scheduled, nil
}

// Newcomers lists events created within windowDays (configured window when <= 0).
func (uc *EventUseCase) Newcomers(ctx context.Context, windowDays int, limit int) ([]domain.ScheduledEvent, error) {
	if windowDays <= 0 {
		windowDays = uc.windowDays
	}
	now := uc.now()

	events, err := uc.eventRepo.ListCreatedSince(ctx, now.AddDate(0, 0, -windowDays-1), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	recent, err := discovery.FilterRecent(events, windowDays, now)
	if err != nil {
		return nil, err
	}

	scheduled := make([]domain.ScheduledEvent, 0, len(recent))
	for _, e := range recent {
		scheduled = append(scheduled, domain.ScheduledEvent{Event: e, When: discovery.Bucket(e.StartsAt, now)})
	}
	return scheduled, nil
}

func (uc *EventUseCase) schedule(e domain.Event) *domain.ScheduledEvent {
	return &domain.ScheduledEvent{Event: e, When: discovery.Bucket(e.StartsAt, uc.now())}
}
