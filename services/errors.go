package services

import "errors"

// Shared errors used across services and the HTTP mapping layer.
var (
	// Authentication
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Lookups
	ErrUserNotFound    = errors.New("user not found")
	ErrCollegeNotFound = errors.New("college not found")

	// Business rules
	ErrCollegeInvalid = errors.New("one or more selected colleges do not exist")

	// Infrastructure
	ErrUploaderNotConfigured = errors.New("file storage is not configured")
)
