package services

import (
	"context"
	"fmt"
	"time"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/djruiz44/wrestling-hub/repositories"
)

// SchedulePublisher pushes schedule changes to live subscribers. It is
// optional; a nil publisher disables broadcasting.
type SchedulePublisher interface {
	Publish(messageType string, payload interface{})
}

type EventService interface {
	Create(ctx context.Context, input EventInput) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
}

type EventInput struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type eventService struct {
	eventRepo repositories.EventRepository
	publisher SchedulePublisher
}

func NewEventService(eventRepo repositories.EventRepository, publisher SchedulePublisher) EventService {
	return &eventService{
		eventRepo: eventRepo,
		publisher: publisher,
	}
}

func (s *eventService) Create(ctx context.Context, input EventInput) (*models.Event, error) {
	var date time.Time

	v := NewValidator()
	v.Check(input.Name != "", "name", "must be provided")
	v.Check(input.Description != "", "description", "must be provided")
	v.Check(input.Date != "", "date", "must be provided")
	if input.Date != "" {
		parsed, ok := ParseDate(input.Date)
		v.Check(ok, "date", "must be a valid date in YYYY-MM-DD format")
		date = parsed
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:        input.Name,
		Date:        date,
		Description: input.Description,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish("EVENT_ADDED", event)
	}

	return event, nil
}

// List returns all events in schedule order: date ascending, insertion order
// as the tie-break.
func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		return []models.Event{}, nil
	}
	return events, nil
}
