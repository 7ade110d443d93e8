package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/djruiz44/wrestling-hub/models"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	ListAll(ctx context.Context) ([]models.Event, error)
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (name, date, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		event.Name,
		event.Date,
		event.Description,
	).Scan(&event.ID, &event.CreatedAt)
}

// ListAll returns every event, date ascending with insertion order (id) as
// the stable tie-break.
func (r *postgresEventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, name, date, description, created_at
		FROM events
		ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		scanErr := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
			&event.Description,
			&event.CreatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
