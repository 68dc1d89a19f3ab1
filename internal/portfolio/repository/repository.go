// Package repository holds the SQL for every portfolio entity.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

// Repositories groups the per-entity repositories sharing one connection pool.
type Repositories struct {
	Categories     *CategoryRepository
	Projects       *ProjectRepository
	Skills         *SkillRepository
	Experiences    *ExperienceRepository
	Educations     *EducationRepository
	Certifications *CertificationRepository
	Contacts       *ContactRepository
}

func NewRepositories(db *sql.DB) *Repositories {
	categories := NewCategoryRepository(db)
	return &Repositories{
		Categories:     categories,
		Projects:       NewProjectRepository(db, categories),
		Skills:         NewSkillRepository(db),
		Experiences:    NewExperienceRepository(db),
		Educations:     NewEducationRepository(db),
		Certifications: NewCertificationRepository(db),
		Contacts:       NewContactRepository(db),
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLSTATE codes mapped to domain errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
	pqNotNullViolation    = "23502"
	pqStringTooLong       = "22001"
)

// mapError turns constraint failures into domain errors and wraps the rest.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Message)
		case pqForeignKeyViolation, pqCheckViolation, pqNotNullViolation, pqStringTooLong:
			return fmt.Errorf("%w: %s", domain.ErrInvalid, pqErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func deleted(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullDate(d *domain.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func datePtr(nt sql.NullTime) *domain.Date {
	if !nt.Valid {
		return nil
	}
	d := domain.DateOf(nt.Time)
	return &d
}
