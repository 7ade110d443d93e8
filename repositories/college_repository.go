package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/djruiz44/wrestling-hub/models"
	"github.com/lib/pq"
)

var (
	ErrCollegeNotFound = errors.New("college not found")
	ErrCollegeInvalid  = errors.New("college reference conflict or invalid")
)

type CollegeRepository interface {
	List(ctx context.Context) ([]models.College, error)
	GetByID(ctx context.Context, id int) (*models.College, error)
	ListByUserID(ctx context.Context, userID int) ([]models.College, error)
	ReplaceForUser(ctx context.Context, exec SQLExecutor, userID int, collegeIDs []int) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
}

type postgresCollegeRepository struct {
	db *sql.DB
}

func NewPostgresCollegeRepository(db *sql.DB) CollegeRepository {
	return &postgresCollegeRepository{db: db}
}

func (r *postgresCollegeRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresCollegeRepository) List(ctx context.Context) ([]models.College, error) {
	query := `
		SELECT id, name, logo_key, recruitment_url
		FROM colleges
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanColleges(rows)
}

func (r *postgresCollegeRepository) GetByID(ctx context.Context, id int) (*models.College, error) {
	query := `
		SELECT id, name, logo_key, recruitment_url
		FROM colleges
		WHERE id = $1`

	college := &models.College{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&college.ID,
		&college.Name,
		&college.LogoKey,
		&college.RecruitmentURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCollegeNotFound
		}
		return nil, err
	}
	return college, nil
}

func (r *postgresCollegeRepository) ListByUserID(ctx context.Context, userID int) ([]models.College, error) {
	query := `
		SELECT c.id, c.name, c.logo_key, c.recruitment_url
		FROM colleges c
		INNER JOIN user_colleges uc ON uc.college_id = c.id
		WHERE uc.user_id = $1
		ORDER BY c.name ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanColleges(rows)
}

// ReplaceForUser implements replace-all-associations semantics: the user's
// existing college links are dropped and the given set inserted, all through
// the same executor so the caller's transaction covers both statements.
func (r *postgresCollegeRepository) ReplaceForUser(ctx context.Context, exec SQLExecutor, userID int, collegeIDs []int) error {
	e := r.getExecutor(exec)

	if _, err := e.ExecContext(ctx, `DELETE FROM user_colleges WHERE user_id = $1`, userID); err != nil {
		return err
	}

	query := `
		INSERT INTO user_colleges (user_id, college_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	for _, collegeID := range collegeIDs {
		if _, err := e.ExecContext(ctx, query, userID, collegeID); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				if pqErr.Code == "23503" && pqErr.Constraint == "user_colleges_college_id_fkey" {
					return ErrCollegeInvalid
				}
			}
			return err
		}
	}
	return nil
}

func (r *postgresCollegeRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE colleges SET logo_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCollegeNotFound)
}

func scanColleges(rows *sql.Rows) ([]models.College, error) {
	colleges := make([]models.College, 0)
	for rows.Next() {
		var college models.College
		scanErr := rows.Scan(
			&college.ID,
			&college.Name,
			&college.LogoKey,
			&college.RecruitmentURL,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		colleges = append(colleges, college)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return colleges, nil
}
