package repository

import "github.com/planora/planora-api/internal/domain/entity"

// EventRepository defines the interface for event-record database operations.
type EventRepository interface {
	Create(e *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	// ListByUser returns the user's events ordered ascending by DateTime.
	ListByUser(userID string) ([]*entity.Event, error)
	Update(e *entity.Event) error
	Delete(id string) error
	DeleteByUser(userID string) error
}
