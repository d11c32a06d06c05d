package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/models"
)

type stubEventRepo struct {
	events    []models.Event
	createErr error
}

func (s *stubEventRepo) List(ctx context.Context) ([]models.Event, error) {
	return s.events, nil
}

func (s *stubEventRepo) GetByID(ctx context.Context, id uint) (models.Event, error) {
	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return models.Event{}, gorm.ErrRecordNotFound
}

func (s *stubEventRepo) Create(ctx context.Context, event *models.Event) error {
	if s.createErr != nil {
		return s.createErr
	}
	event.ID = uint(len(s.events) + 1)
	s.events = append(s.events, *event)
	return nil
}

func TestEventServiceList(t *testing.T) {
	repo := &stubEventRepo{events: []models.Event{{ID: 1, Name: "hackathon"}, {ID: 2, Name: "workshop"}}}
	svc := NewEventService(repo, zerolog.Nop())

	responses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []dto.EventResponse{{ID: 1, Name: "hackathon"}, {ID: 2, Name: "workshop"}}, responses)
}

func TestEventServiceGetMissingEvent(t *testing.T) {
	svc := NewEventService(&stubEventRepo{}, zerolog.Nop())

	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventServiceCreate(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, zerolog.Nop())

	response, err := svc.Create(context.Background(), dto.EventRequest{Name: "hackathon"})
	require.NoError(t, err)
	require.Equal(t, dto.EventResponse{ID: 1, Name: "hackathon"}, response)
	require.Len(t, repo.events, 1)
}
