package repository

import (
	"context"
	"database/sql"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

type EducationRepository struct {
	db *sql.DB
}

func NewEducationRepository(db *sql.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

// List orders by start_year, which is text; four digit years sort correctly.
func (r *EducationRepository) List(ctx context.Context) ([]domain.Education, error) {
	query := `
		SELECT id, degree, school, description, start_year, end_year
		FROM educations
		ORDER BY start_year DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError("list educations", err)
	}
	defer rows.Close()

	out := make([]domain.Education, 0, 4)
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.Degree, &e.School, &e.Description, &e.StartYear, &e.EndYear); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EducationRepository) Create(ctx context.Context, e *domain.Education) error {
	query := `
		INSERT INTO educations (degree, school, description, start_year, end_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, e.Degree, e.School, e.Description, e.StartYear, e.EndYear).Scan(&e.ID)
	return mapError("create education", err)
}

func (r *EducationRepository) Update(ctx context.Context, e *domain.Education) error {
	query := `
		UPDATE educations
		SET degree = $2, school = $3, description = $4, start_year = $5, end_year = $6
		WHERE id = $1
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, e.ID, e.Degree, e.School, e.Description, e.StartYear, e.EndYear).Scan(&e.ID)
	return mapError("update education", err)
}

func (r *EducationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := deleted(r.db.ExecContext(ctx, `DELETE FROM educations WHERE id = $1`, id))
	return ok, mapError("delete education", err)
}
