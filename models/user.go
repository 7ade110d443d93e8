package models

import "time"

type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	FirstName      *string   `json:"first_name,omitempty"`
	LastName       *string   `json:"last_name,omitempty"`
	GraduationYear *int      `json:"graduation_year,omitempty"`
	GPA            *float64  `json:"gpa,omitempty"`
	Team           *string   `json:"team,omitempty"`
	School         *string   `json:"school,omitempty"`
	Club           *string   `json:"club,omitempty"`
	Height         *string   `json:"height,omitempty"`
	WeightClass    *string   `json:"weight_class,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	Colleges []College `json:"colleges,omitempty"`
}
