package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/djruiz44/wrestling-hub/repositories"
)

type MatchService interface {
	Add(ctx context.Context, userID int, input MatchInput) (*models.Match, error)
	ListOwn(ctx context.Context, userID int) ([]models.Match, error)
}

type MatchInput struct {
	Opponent    string  `json:"opponent"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchService {
	return &matchService{
		matchRepo: matchRepo,
	}
}

// Add records a match owned by userID. The owner always comes from the
// resolved session identity, never from client input.
func (s *matchService) Add(ctx context.Context, userID int, input MatchInput) (*models.Match, error) {
	var date time.Time

	v := NewValidator()
	v.Check(input.Opponent != "", "opponent", "must be provided")
	v.Check(input.Date != "", "date", "must be provided")
	if input.Date != "" {
		parsed, ok := ParseDate(input.Date)
		v.Check(ok, "date", "must be a valid date in YYYY-MM-DD format")
		date = parsed
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	match := &models.Match{
		UserID:      userID,
		Opponent:    input.Opponent,
		Date:        date,
		Description: input.Description,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchUserInvalid) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

// ListOwn returns the user's own matches in date order. Matches belonging to
// other users are never reachable through this path.
func (s *matchService) ListOwn(ctx context.Context, userID int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for user %d: %w", userID, err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}
