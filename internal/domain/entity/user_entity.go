package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never plaintext.
//
// Name, Email and BirthDate have no update path; only the password
// is mutated after registration.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	BirthDate time.Time // day precision, stored as DATE
	CreatedAt time.Time
	UpdatedAt time.Time
}
