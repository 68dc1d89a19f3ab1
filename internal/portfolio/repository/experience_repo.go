package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

type ExperienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// ExperienceFilter narrows Search. A nil IsCurrent matches both states.
type ExperienceFilter struct {
	Company   string
	IsCurrent *bool
}

// List returns every experience, latest start date first. is_current plays no part in the order.
func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	return r.Search(ctx, ExperienceFilter{})
}

func (r *ExperienceRepository) Search(ctx context.Context, f ExperienceFilter) ([]domain.Experience, error) {
	var current sql.NullBool
	if f.IsCurrent != nil {
		current = sql.NullBool{Bool: *f.IsCurrent, Valid: true}
	}

	query := `
		SELECT id, title, company, location, description, start_date, end_date, is_current
		FROM experiences
		WHERE ($1::text = '' OR company ILIKE '%' || $1::text || '%')
		  AND ($2::boolean IS NULL OR is_current = $2::boolean)
		ORDER BY start_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, strings.TrimSpace(f.Company), current)
	if err != nil {
		return nil, mapError("list experiences", err)
	}
	defer rows.Close()

	out := make([]domain.Experience, 0, 8)
	for rows.Next() {
		var (
			e     domain.Experience
			start time.Time
			end   sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.Description, &start, &end, &e.IsCurrent); err != nil {
			return nil, err
		}
		e.StartDate = domain.DateOf(start)
		e.EndDate = datePtr(end)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	e.Normalize()
	query := `
		INSERT INTO experiences (title, company, location, description, start_date, end_date, is_current)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		e.Title, e.Company, e.Location, e.Description, e.StartDate.Time, nullDate(e.EndDate), e.IsCurrent,
	).Scan(&e.ID)
	return mapError("create experience", err)
}

func (r *ExperienceRepository) Update(ctx context.Context, e *domain.Experience) error {
	e.Normalize()
	query := `
		UPDATE experiences
		SET title = $2, company = $3, location = $4, description = $5,
			start_date = $6, end_date = $7, is_current = $8
		WHERE id = $1
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.Title, e.Company, e.Location, e.Description, e.StartDate.Time, nullDate(e.EndDate), e.IsCurrent,
	).Scan(&e.ID)
	return mapError("update experience", err)
}

func (r *ExperienceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := deleted(r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1`, id))
	return ok, mapError("delete experience", err)
}
