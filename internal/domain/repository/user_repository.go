package repository

import (
	"time"

	"github.com/planora/planora-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByEmailAndBirthDate(email string, birthDate time.Time) (*entity.User, error)
	UpdatePassword(id string, passwordHash string) error
	Delete(id string) error
}
