package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError("list categories", err)
	}
	defer rows.Close()

	out := make([]domain.Category, 0, 8)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`
	c.Name = strings.TrimSpace(c.Name)
	return mapError("create category", r.db.QueryRowContext(ctx, query, c.Name).Scan(&c.ID))
}

// GetOrCreate returns the id of the named category, inserting it when missing.
// It runs on q so project writes can call it inside their transaction.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, q queryer, name string) (int64, error) {
	if q == nil {
		q = r.db
	}
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	var id int64
	if err := q.QueryRowContext(ctx, query, strings.TrimSpace(name)).Scan(&id); err != nil {
		return 0, mapError("get or create category", err)
	}
	return id, nil
}

// Delete removes the category; project links go with it.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := deleted(r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id))
	return ok, mapError("delete category", err)
}
