package models

import "time"

// ContactMessage is append-only: rows are created by the public contact form
// and never updated afterwards.
type ContactMessage struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
