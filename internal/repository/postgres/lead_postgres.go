package postgres

import (
	"context"
	"database/sql"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

// LeadPostgres is a PostgreSQL implementation of repository.LeadRepository.
type LeadPostgres struct {
	db *sql.DB
}

// NewLeadPostgres creates a new LeadPostgres repository.
func NewLeadPostgres(db *sql.DB) *LeadPostgres {
	return &LeadPostgres{db: db}
}

var _ repository.LeadRepository = (*LeadPostgres)(nil)

// Create inserts a lead row and returns the stored record.
func (r *LeadPostgres) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	const q = `
		INSERT INTO leads (id, name, email, phone, company, interest, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, phone, company, interest, message, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Company,
		string(lead.Interest),
		lead.Message,
		lead.CreatedAt,
	)
	var out model.Lead
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Phone,
		&out.Company,
		&out.Interest,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	out.CreatedAt = out.CreatedAt.UTC()
	return &out, nil
}
