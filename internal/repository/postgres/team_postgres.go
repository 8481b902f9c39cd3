package postgres

import (
	"context"
	"database/sql"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

// TeamPostgres is a PostgreSQL implementation of repository.TeamRepository.
type TeamPostgres struct {
	db *sql.DB
}

// NewTeamPostgres creates a new TeamPostgres repository.
func NewTeamPostgres(db *sql.DB) *TeamPostgres {
	return &TeamPostgres{db: db}
}

var _ repository.TeamRepository = (*TeamPostgres)(nil)

// List returns team members in curated order.
func (r *TeamPostgres) List(ctx context.Context) ([]model.TeamMember, error) {
	const q = `
		SELECT id, name, role, bio, image_url, created_at
		FROM team_members
		ORDER BY created_at ASC, id ASC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.MaxTeam)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TeamMember, 0)
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.CreatedAt = m.CreatedAt.UTC()
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Replace swaps all team members in one transaction.
func (r *TeamPostgres) Replace(ctx context.Context, members []model.TeamMember) error {
	const q = `
		INSERT INTO team_members (id, name, role, bio, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	return replaceAll(ctx, r.db, "team_members", len(members), func(tx *sql.Tx, i int) error {
		m := members[i]
		_, err := tx.ExecContext(ctx, q, m.ID, m.Name, m.Role, m.Bio, m.ImageURL, m.CreatedAt)
		return err
	})
}
