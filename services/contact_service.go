package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/djruiz44/wrestling-hub/repositories"
)

type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*ContactResult, error)
}

type ContactInput struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResult distinguishes the persistence outcome from the best-effort
// notification outcome: Notified may be false while the message was saved.
type ContactResult struct {
	Message  *models.ContactMessage
	Notified bool
}

type contactService struct {
	contactRepo repositories.ContactMessageRepository
	notifier    Notifier
	logger      *slog.Logger
}

func NewContactService(contactRepo repositories.ContactMessageRepository, notifier Notifier, logger *slog.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Submit validates and persists the message, then attempts the notification.
// The message is always persisted before the notification is attempted, and
// a notification failure never rolls the message back.
func (s *contactService) Submit(ctx context.Context, input ContactInput) (*ContactResult, error) {
	v := NewValidator()
	v.Check(input.Email != "", "email", "must be provided")
	if input.Email != "" {
		v.Check(IsValidEmail(input.Email), "email", "must be a valid email address")
	}
	v.Check(input.Message != "", "message", "must be provided")
	if err := v.Err(); err != nil {
		return nil, err
	}

	message := &models.ContactMessage{
		Email:   input.Email,
		Message: input.Message,
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to persist contact message: %w", err)
	}

	notified := false
	if s.notifier != nil {
		if err := s.notifier.SendContactNotification(input.Email, input.Message); err != nil {
			s.logger.Warn("contact notification delivery failed",
				slog.Int("contact_message_id", message.ID),
				slog.Any("error", err),
			)
		} else {
			notified = true
		}
	}

	return &ContactResult{
		Message:  message,
		Notified: notified,
	}, nil
}
