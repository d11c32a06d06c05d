package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/internal/repository"
)

// ErrEventNotFound indicates the referenced event does not exist.
var ErrEventNotFound = errors.New("event not found")

// EventService exposes event operations.
type EventService interface {
	List(ctx context.Context) ([]dto.EventResponse, error)
	Get(ctx context.Context, id uint) (dto.EventResponse, error)
	Create(ctx context.Context, payload dto.EventRequest) (dto.EventResponse, error)
}

type eventService struct {
	events repository.EventRepository
	logger zerolog.Logger
}

// NewEventService constructs the event service.
func NewEventService(events repository.EventRepository, logger zerolog.Logger) EventService {
	return &eventService{
		events: events,
		logger: logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *eventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewEventResponses(events), nil
}

func (s *eventService) Get(ctx context.Context, id uint) (dto.EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, ErrEventNotFound
		}
		return dto.EventResponse{}, err
	}
	return dto.NewEventResponse(event), nil
}

func (s *eventService) Create(ctx context.Context, payload dto.EventRequest) (dto.EventResponse, error) {
	event := models.Event{Name: payload.Name}
	if err := s.events.Create(ctx, &event); err != nil {
		return dto.EventResponse{}, err
	}
	return dto.NewEventResponse(event), nil
}
