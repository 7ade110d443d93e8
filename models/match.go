package models

import "time"

type Match struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Opponent    string    `json:"opponent"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
