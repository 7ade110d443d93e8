package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, exec SQLExecutor, user *models.User) error
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// Create inserts a new user. Username uniqueness is enforced by the
// users_username_key constraint, which is the authority even under concurrent
// registrations; there is deliberately no check-then-insert here.
func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "users_username_key" {
				return ErrUsernameTaken
			}
		}
		return err
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := userSelectColumns + ` WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := userSelectColumns + ` WHERE username = $1`
	return r.scanUser(ctx, query, username)
}

// UpdateProfile overwrites every mutable profile attribute at once. The
// username and password hash are not touched here. Passing a transaction as
// exec lets the caller commit the profile row together with the college
// associations.
func (r *postgresUserRepository) UpdateProfile(ctx context.Context, exec SQLExecutor, user *models.User) error {
	query := `
		UPDATE users SET
			first_name = $1,
			last_name = $2,
			graduation_year = $3,
			gpa = $4,
			team = $5,
			school = $6,
			club = $7,
			height = $8,
			weight_class = $9
		WHERE id = $10`

	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.GraduationYear,
		user.GPA,
		user.Team,
		user.School,
		user.Club,
		user.Height,
		user.WeightClass,
		user.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

const userSelectColumns = `
	SELECT id, username, password_hash, first_name, last_name, graduation_year,
	       gpa, team, school, club, height, weight_class, created_at
	FROM users`

func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.GraduationYear,
		&user.GPA,
		&user.Team,
		&user.School,
		&user.Club,
		&user.Height,
		&user.WeightClass,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}
