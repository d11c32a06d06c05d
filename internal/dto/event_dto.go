package dto

import "github.com/pidgeonhole/rookery-api/internal/models"

// EventRequest carries the body for creating an event.
type EventRequest struct {
	Name string `json:"name" validate:"required"`
}

// EventResponse represents an event returned by the API.
type EventResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewEventResponse builds a response DTO from the model.
func NewEventResponse(event models.Event) EventResponse {
	return EventResponse{ID: event.ID, Name: event.Name}
}

// NewEventResponses maps a slice of events, preserving order.
func NewEventResponses(events []models.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, NewEventResponse(event))
	}
	return responses
}
