package repository

import (
	"context"
	"database/sql"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List returns skills in insertion order so grouping keeps a stable order.
func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	return r.ListByCategory(ctx, "")
}

// ListByCategory returns the skills with the given label, or all of them for "".
func (r *SkillRepository) ListByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	query := `
		SELECT id, name, category, proficiency
		FROM skills
		WHERE ($1::text = '' OR category = $1::text)
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, mapError("list skills", err)
	}
	defer rows.Close()

	out := make([]domain.Skill, 0, 16)
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	query := `
		INSERT INTO skills (name, category, proficiency)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return mapError("create skill", r.db.QueryRowContext(ctx, query, s.Name, s.Category, s.Proficiency).Scan(&s.ID))
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	query := `
		UPDATE skills
		SET name = $2, category = $3, proficiency = $4
		WHERE id = $1
		RETURNING id
	`
	return mapError("update skill", r.db.QueryRowContext(ctx, query, s.ID, s.Name, s.Category, s.Proficiency).Scan(&s.ID))
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := deleted(r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id))
	return ok, mapError("delete skill", err)
}
