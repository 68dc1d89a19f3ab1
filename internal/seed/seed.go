// Package seed loads the initial portfolio content. Every step is
// get-or-create, so running it again leaves the row counts unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/muhammad-hassn/portfolio/internal/storage/postgres"
)

// DB is the subset of pgx.Tx used while seeding.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Result counts the rows created by one run.
type Result struct {
	Categories     int
	Skills         int
	Educations     int
	Experiences    int
	Projects       int
	Certifications int
}

// Run applies the schema and the dataset in a single transaction.
func Run(ctx context.Context, pool *pgxpool.Pool) (Result, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return Result{}, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, postgres.Schema); err != nil {
		return Result{}, fmt.Errorf("apply schema: %w", err)
	}

	res, err := Apply(ctx, tx)
	if err != nil {
		return Result{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Result{}, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

// Apply writes the dataset through db.
func Apply(ctx context.Context, db DB) (Result, error) {
	var res Result
	log := zerolog.Ctx(ctx)

	for _, name := range categories {
		_, created, err := category(ctx, db, name)
		if err != nil {
			return res, err
		}
		res.Categories += b2i(created)
	}

	for _, s := range skills {
		created, err := getOrCreate(ctx, db,
			`SELECT id FROM skills WHERE name = $1 AND category = $2 AND proficiency = $3 LIMIT 1`,
			`INSERT INTO skills (name, category, proficiency) VALUES ($1, $2, $3) RETURNING id`,
			s.Name, s.Category, s.Proficiency)
		if err != nil {
			return res, fmt.Errorf("skill %q: %w", s.Name, err)
		}
		res.Skills += b2i(created)
	}

	created, err := upsertEducation(ctx, db)
	if err != nil {
		return res, err
	}
	res.Educations += b2i(created)

	created, err = getOrCreate(ctx, db,
		`SELECT id FROM experiences
		 WHERE title = $1 AND company = $2 AND description = $3 AND start_date = $4 AND is_current = $5
		 LIMIT 1`,
		`INSERT INTO experiences (title, company, description, start_date, is_current)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		experience.Title, experience.Company, experience.Description, experience.StartDate, experience.IsCurrent)
	if err != nil {
		return res, fmt.Errorf("experience: %w", err)
	}
	res.Experiences += b2i(created)

	for _, p := range projects {
		created, err := project(ctx, db, p)
		if err != nil {
			return res, fmt.Errorf("project %q: %w", p.Title, err)
		}
		res.Projects += b2i(created)
	}

	for _, c := range certifications {
		created, err := getOrCreate(ctx, db,
			`SELECT id FROM certifications WHERE title = $1 AND issued_by = $2 LIMIT 1`,
			`INSERT INTO certifications (title, issued_by) VALUES ($1, $2) RETURNING id`,
			c.Title, c.IssuedBy)
		if err != nil {
			return res, fmt.Errorf("certification %q: %w", c.Title, err)
		}
		res.Certifications += b2i(created)
	}

	log.Info().
		Int("categories", res.Categories).
		Int("skills", res.Skills).
		Int("projects", res.Projects).
		Int("certifications", res.Certifications).
		Msg("seed applied")
	return res, nil
}

// getOrCreate runs lookup and, when it finds nothing, insert with the same args.
func getOrCreate(ctx context.Context, db DB, lookup, insert string, args ...any) (bool, error) {
	var id int64
	err := db.QueryRow(ctx, lookup, args...).Scan(&id)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}
	if err := db.QueryRow(ctx, insert, args...).Scan(&id); err != nil {
		return false, err
	}
	return true, nil
}

func category(ctx context.Context, db DB, name string) (int64, bool, error) {
	var (
		id       int64
		inserted bool
	)
	err := db.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, (xmax = 0) AS inserted
	`, name).Scan(&id, &inserted)
	if err != nil {
		return 0, false, fmt.Errorf("category %q: %w", name, err)
	}
	return id, inserted, nil
}

// upsertEducation keys the row on degree and refreshes the other fields.
func upsertEducation(ctx context.Context, db DB) (bool, error) {
	e := education
	var id int64
	err := db.QueryRow(ctx, `SELECT id FROM educations WHERE degree = $1 ORDER BY id LIMIT 1`, e.Degree).Scan(&id)
	switch {
	case err == nil:
		_, err = db.Exec(ctx, `
			UPDATE educations
			SET school = $2, start_year = $3, end_year = $4, description = $5
			WHERE id = $1
		`, id, e.School, e.StartYear, e.EndYear, e.Description)
		if err != nil {
			return false, fmt.Errorf("update education: %w", err)
		}
		return false, nil
	case errors.Is(err, pgx.ErrNoRows):
		err = db.QueryRow(ctx, `
			INSERT INTO educations (degree, school, start_year, end_year, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, e.Degree, e.School, e.StartYear, e.EndYear, e.Description).Scan(&id)
		if err != nil {
			return false, fmt.Errorf("insert education: %w", err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("find education: %w", err)
	}
}

// project creates the project only when its title is new, then attaches
// every listed category, creating categories on demand.
func project(ctx context.Context, db DB, p projectSeed) (bool, error) {
	var (
		id      int64
		created bool
	)
	err := db.QueryRow(ctx, `SELECT id FROM projects WHERE title = $1 ORDER BY id LIMIT 1`, p.Title).Scan(&id)
	switch {
	case err == nil:
	case errors.Is(err, pgx.ErrNoRows):
		err = db.QueryRow(ctx, `
			INSERT INTO projects (title, description, git_link, live_link)
			VALUES ($1, $2, NULLIF($3::text, ''), NULLIF($4::text, ''))
			RETURNING id
		`, p.Title, p.Description, p.GitLink, p.LiveLink).Scan(&id)
		if err != nil {
			return false, err
		}
		created = true
	default:
		return false, err
	}

	for _, name := range p.Categories {
		categoryID, _, err := category(ctx, db, name)
		if err != nil {
			return false, err
		}
		_, err = db.Exec(ctx, `
			INSERT INTO project_categories (project_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, id, categoryID)
		if err != nil {
			return false, fmt.Errorf("link category %q: %w", name, err)
		}
	}
	return created, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
