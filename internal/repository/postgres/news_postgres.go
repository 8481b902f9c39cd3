package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

// NewsPostgres is a PostgreSQL implementation of repository.NewsRepository.
type NewsPostgres struct {
	db *sql.DB
}

// NewNewsPostgres creates a new NewsPostgres repository.
func NewNewsPostgres(db *sql.DB) *NewsPostgres {
	return &NewsPostgres{db: db}
}

var _ repository.NewsRepository = (*NewsPostgres)(nil)

// List returns articles newest first.
func (r *NewsPostgres) List(ctx context.Context) ([]model.NewsArticle, error) {
	const q = `
		SELECT id, title, date, short_content, content, image_url, created_at
		FROM news_articles
		ORDER BY date DESC, created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.MaxNews)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NewsArticle, 0)
	for rows.Next() {
		var a model.NewsArticle
		if err := rows.Scan(&a.ID, &a.Title, &a.Date, &a.ShortContent, &a.Content, &a.ImageURL, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.CreatedAt = a.CreatedAt.UTC()
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single article by its ID.
func (r *NewsPostgres) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	const q = `
		SELECT id, title, date, short_content, content, image_url, created_at
		FROM news_articles
		WHERE id = $1
	`
	var a model.NewsArticle
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.Title, &a.Date, &a.ShortContent, &a.Content, &a.ImageURL, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return &a, nil
}

// Replace swaps all articles in one transaction.
func (r *NewsPostgres) Replace(ctx context.Context, articles []model.NewsArticle) error {
	const q = `
		INSERT INTO news_articles (id, title, date, short_content, content, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	return replaceAll(ctx, r.db, "news_articles", len(articles), func(tx *sql.Tx, i int) error {
		a := articles[i]
		_, err := tx.ExecContext(ctx, q, a.ID, a.Title, a.Date, a.ShortContent, a.Content, a.ImageURL, a.CreatedAt)
		return err
	})
}
