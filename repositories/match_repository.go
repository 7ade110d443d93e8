package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchUserInvalid = errors.New("match user conflict or invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	ListByUserID(ctx context.Context, userID int) ([]models.Match, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (user_id, opponent, date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		match.UserID,
		match.Opponent,
		match.Date,
		match.Description,
	).Scan(&match.ID, &match.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" && pqErr.Constraint == "matches_user_id_fkey" {
				return ErrMatchUserInvalid
			}
		}
		return err
	}
	return nil
}

// ListByUserID returns only the owning user's matches, date ascending with
// insertion order (id) as the stable tie-break.
func (r *postgresMatchRepository) ListByUserID(ctx context.Context, userID int) ([]models.Match, error) {
	query := `
		SELECT id, user_id, opponent, date, description, created_at
		FROM matches
		WHERE user_id = $1
		ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		scanErr := rows.Scan(
			&match.ID,
			&match.UserID,
			&match.Opponent,
			&match.Date,
			&match.Description,
			&match.CreatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
