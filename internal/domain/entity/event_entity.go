package entity

import (
	"time"
)

// Event is a personal event record owned by a single user.
// UserID is a soft reference: the store does not enforce it, the
// delete-account path cascades over it.
type Event struct {
	ID          string
	UserID      string
	EventName   string
	Venue       string
	DateTime    time.Time
	Value       float64
	Status      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
