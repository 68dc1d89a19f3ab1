package repository

import (
	"context"
	"database/sql"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
)

// ContactRepository stores visitor messages. Rows are append only apart from Delete.
type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts the message and fills ID and CreatedAt from the database.
func (r *ContactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, m.Name, m.Email, m.Subject, m.Message).Scan(&m.ID, &m.CreatedAt)
	return mapError("create contact message", err)
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError("list contact messages", err)
	}
	defer rows.Close()

	out := make([]domain.ContactMessage, 0, 16)
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContactRepository) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		WHERE id = $1
	`
	var m domain.ContactMessage
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, mapError("get contact message", err)
	}
	return &m, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := deleted(r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id))
	return ok, mapError("delete contact message", err)
}
