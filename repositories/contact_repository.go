package repositories

import (
	"context"
	"database/sql"

	"github.com/djruiz44/wrestling-hub/models"
)

// ContactMessageRepository is insert-only. Contact messages have no further
// lifecycle, so there are no update or delete methods.
type ContactMessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

type postgresContactMessageRepository struct {
	db *sql.DB
}

func NewPostgresContactMessageRepository(db *sql.DB) ContactMessageRepository {
	return &postgresContactMessageRepository{db: db}
}

func (r *postgresContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (email, message)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		message.Email,
		message.Message,
	).Scan(&message.ID, &message.CreatedAt)
}
