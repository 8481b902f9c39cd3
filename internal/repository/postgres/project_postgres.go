package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

const projectColumns = `id, name, address, category, units, square_feet, year, status, description, image_url, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (model.Project, error) {
	var (
		p     model.Project
		units sql.NullInt64
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.Category,
		&units,
		&p.SquareFeet,
		&p.Year,
		&p.Status,
		&p.Description,
		&p.ImageURL,
		&p.CreatedAt,
	); err != nil {
		return model.Project{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	if units.Valid {
		n := int(units.Int64)
		p.Units = &n
	}
	return p, nil
}

func nullableUnits(units *int) any {
	if units == nil {
		return nil
	}
	return int64(*units)
}

// List returns projects matching q in curated order. Empty filter fields are ignored.
func (r *ProjectPostgres) List(ctx context.Context, q repository.ProjectQuery) ([]model.Project, error) {
	const qList = `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR name ILIKE $2 OR address ILIKE $2)
		ORDER BY created_at ASC, id ASC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, qList, string(q.Category), containsPattern(q.Search), repository.MaxProjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single project by its ID.
func (r *ProjectPostgres) FindByID(ctx context.Context, id string) (*model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Replace swaps all projects in one transaction.
func (r *ProjectPostgres) Replace(ctx context.Context, projects []model.Project) error {
	const q = `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	return replaceAll(ctx, r.db, "projects", len(projects), func(tx *sql.Tx, i int) error {
		p := projects[i]
		_, err := tx.ExecContext(ctx, q,
			p.ID,
			p.Name,
			p.Address,
			string(p.Category),
			nullableUnits(p.Units),
			p.SquareFeet,
			p.Year,
			p.Status,
			p.Description,
			p.ImageURL,
			p.CreatedAt,
		)
		return err
	})
}
