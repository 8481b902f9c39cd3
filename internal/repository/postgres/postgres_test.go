package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

func TestScannedTimestampsAreUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	local := time.Date(2024, 3, 9, 18, 30, 0, 0, time.FixedZone("EST", -5*60*60))

	t.Run("team", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM team_members").
			WillReturnRows(sqlmock.NewRows(teamColumns).AddRow("onkar-singh", "Onkar Singh", "Founder & CEO", "", "", local))

		items, err := NewTeamPostgres(db).List(ctx)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, time.UTC, items[0].CreatedAt.Location())
		assert.True(t, items[0].CreatedAt.Equal(local))
	})

	t.Run("project", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM projects WHERE id").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("singh-tower", "Singh Tower", "Jersey City", "Featured", nil, "", "", "", "", "", local))

		p, err := NewProjectPostgres(db).FindByID(ctx, "singh-tower")

		require.NoError(t, err)
		assert.Equal(t, time.UTC, p.CreatedAt.Location())
	})

	t.Run("news", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM news_articles").
			WithArgs(repository.MaxNews).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "date", "short_content", "content", "image_url", "created_at"}).
				AddRow("groundbreaking", "Groundbreaking", "2024", "", "body", "", local))

		items, err := NewNewsPostgres(db).List(ctx)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, time.UTC, items[0].CreatedAt.Location())
	})

	t.Run("lead", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO leads").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "company", "interest", "message", "created_at"}).
				AddRow("4b0f6f4e-8c61-4a53-9a43-1f1d0d3f3e10", "Jane", "jane@example.com", "", "", "Tenant", "Hi", local))

		out, err := NewLeadPostgres(db).Create(ctx, &model.Lead{
			ID:        "4b0f6f4e-8c61-4a53-9a43-1f1d0d3f3e10",
			Interest:  model.InterestTenant,
			CreatedAt: local,
		})

		require.NoError(t, err)
		assert.Equal(t, time.UTC, out.CreatedAt.Location())
		assert.Equal(t, "2024-03-09T23:30:00Z", out.CreatedAt.Format(time.RFC3339))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
