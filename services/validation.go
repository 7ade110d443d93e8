package services

import (
	"regexp"
	"time"
)

// dateLayout is the calendar date format every form uses.
const dateLayout = "2006-01-02"

var emailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError carries per-field failure reasons back to the client. A
// command that fails validation never reaches persistence.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// Validator accumulates per-field errors; the first error recorded for a
// field wins.
type Validator struct {
	fields map[string]string
}

func NewValidator() *Validator {
	return &Validator{fields: make(map[string]string)}
}

func (v *Validator) AddError(field, message string) {
	if _, exists := v.fields[field]; !exists {
		v.fields[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) Valid() bool {
	return len(v.fields) == 0
}

// Err returns nil when everything checked out, or a *ValidationError with
// the accumulated field messages.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

func IsValidEmail(email string) bool {
	return emailRX.MatchString(email)
}

// ParseDate parses a YYYY-MM-DD form value into a calendar date.
func ParseDate(value string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
