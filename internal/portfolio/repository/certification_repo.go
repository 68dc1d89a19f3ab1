package repository

import (
	"context"
	"database/sql"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

type CertificationRepository struct {
	db *sql.DB
}

func NewCertificationRepository(db *sql.DB) *CertificationRepository {
	return &CertificationRepository{db: db}
}

// List orders by issue date, newest first. Undated rows come first, as
// PostgreSQL sorts NULL above everything in descending order.
func (r *CertificationRepository) List(ctx context.Context) ([]domain.Certification, error) {
	query := `
		SELECT id, title, issued_by, link, date_issued
		FROM certifications
		ORDER BY date_issued DESC NULLS FIRST, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError("list certifications", err)
	}
	defer rows.Close()

	out := make([]domain.Certification, 0, 8)
	for rows.Next() {
		var (
			c      domain.Certification
			link   sql.NullString
			issued sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.IssuedBy, &link, &issued); err != nil {
			return nil, err
		}
		c.Link = stringPtr(link)
		c.DateIssued = datePtr(issued)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CertificationRepository) Create(ctx context.Context, c *domain.Certification) error {
	query := `
		INSERT INTO certifications (title, issued_by, link, date_issued)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, c.Title, c.IssuedBy, nullString(c.Link), nullDate(c.DateIssued)).Scan(&c.ID)
	return mapError("create certification", err)
}

func (r *CertificationRepository) Update(ctx context.Context, c *domain.Certification) error {
	query := `
		UPDATE certifications
		SET title = $2, issued_by = $3, link = $4, date_issued = $5
		WHERE id = $1
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.Title, c.IssuedBy, nullString(c.Link), nullDate(c.DateIssued)).Scan(&c.ID)
	return mapError("update certification", err)
}

func (r *CertificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := deleted(r.db.ExecContext(ctx, `DELETE FROM certifications WHERE id = $1`, id))
	return ok, mapError("delete certification", err)
}
