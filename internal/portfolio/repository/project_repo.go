package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

type ProjectRepository struct {
	db         *sql.DB
	categories *CategoryRepository
}

func NewProjectRepository(db *sql.DB, categories *CategoryRepository) *ProjectRepository {
	return &ProjectRepository{db: db, categories: categories}
}

// ProjectFilter narrows Search. Empty fields match everything.
type ProjectFilter struct {
	Query    string
	Category string
}

const projectSelect = `
	SELECT p.id, p.title, p.description, p.image, p.git_link, p.live_link, p.date_created,
		COALESCE(array_agg(c.name ORDER BY c.name) FILTER (WHERE c.id IS NOT NULL), '{}') AS categories
	FROM projects p
	LEFT JOIN project_categories pc ON pc.project_id = p.id
	LEFT JOIN categories c ON c.id = pc.category_id
`

// List returns every project, most recently created first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return r.Search(ctx, ProjectFilter{})
}

// Search matches Query against title and description and keeps only
// projects tagged with Category when it is set.
func (r *ProjectRepository) Search(ctx context.Context, f ProjectFilter) ([]domain.Project, error) {
	query := projectSelect + `
	WHERE ($1::text = '' OR p.title ILIKE '%' || $1::text || '%' OR p.description ILIKE '%' || $1::text || '%')
	  AND ($2::text = '' OR EXISTS (
		SELECT 1
		FROM project_categories fpc
		JOIN categories fc ON fc.id = fpc.category_id
		WHERE fpc.project_id = p.id AND fc.name = $2::text
	  ))
	GROUP BY p.id
	ORDER BY p.date_created DESC, p.id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, strings.TrimSpace(f.Query), strings.TrimSpace(f.Category))
	if err != nil {
		return nil, mapError("list projects", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	query := projectSelect + `
	WHERE p.id = $1
	GROUP BY p.id
	`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("get project", err)
	}
	return p, nil
}

// Create inserts the project and links its categories, creating missing
// categories on the way. DateCreated is filled from the database.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projects (title, description, image, git_link, live_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_created
	`
	var created time.Time
	err = tx.QueryRowContext(ctx, query,
		p.Title, p.Description, p.Image, nullString(p.GitLink), nullString(p.LiveLink),
	).Scan(&p.ID, &created)
	if err != nil {
		return mapError("create project", err)
	}
	p.DateCreated = domain.DateOf(created)

	if err := r.linkCategories(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites the editable fields and replaces the category set.
// date_created is never touched.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE projects
		SET title = $2, description = $3, image = $4, git_link = $5, live_link = $6
		WHERE id = $1
		RETURNING date_created
	`
	var created time.Time
	err = tx.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Description, p.Image, nullString(p.GitLink), nullString(p.LiveLink),
	).Scan(&created)
	if err != nil {
		return mapError("update project", err)
	}
	p.DateCreated = domain.DateOf(created)

	if _, err := tx.ExecContext(ctx, `DELETE FROM project_categories WHERE project_id = $1`, p.ID); err != nil {
		return mapError("clear project categories", err)
	}
	if err := r.linkCategories(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := deleted(r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id))
	return ok, mapError("delete project", err)
}

func (r *ProjectRepository) linkCategories(ctx context.Context, q queryer, p *domain.Project) error {
	names := make([]string, 0, len(p.Categories))
	seen := make(map[string]bool, len(p.Categories))
	for _, name := range p.Categories {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		categoryID, err := r.categories.GetOrCreate(ctx, q, name)
		if err != nil {
			return err
		}
		_, err = q.ExecContext(ctx, `
			INSERT INTO project_categories (project_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, p.ID, categoryID)
		if err != nil {
			return mapError("link project category", err)
		}
		names = append(names, name)
	}
	p.Categories = names
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p        domain.Project
		gitLink  sql.NullString
		liveLink sql.NullString
		created  time.Time
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &gitLink, &liveLink, &created, pq.Array(&p.Categories))
	if err != nil {
		return nil, err
	}
	p.GitLink = stringPtr(gitLink)
	p.LiveLink = stringPtr(liveLink)
	p.DateCreated = domain.DateOf(created)
	if p.Categories == nil {
		p.Categories = []string{}
	}
	return &p, nil
}
