package models

import (
	"time"
)

// UserDB represents one contact-form submission stored in the users table.
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Assigned by storage on insert
	Name      string    `json:"name" db:"name"`             // Trimmed, never empty
	Email     string    `json:"email" db:"email"`           // Trimmed, never empty
	Message   *string   `json:"message" db:"message"`       // nil when omitted
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Insertion time, set by storage
}
