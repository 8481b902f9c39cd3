package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gnapi/internal/model"
)

func TestLeadPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()
	lead := &model.Lead{
		ID:        "4b0f6f4e-8c61-4a53-9a43-1f1d0d3f3e10",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Interest:  model.InterestInvestor,
		Message:   "Interested in Singh Tower",
		CreatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "company", "interest", "message", "created_at"}).
			AddRow(lead.ID, lead.Name, lead.Email, "", "", "Investor", lead.Message, now)

		mock.ExpectQuery("INSERT INTO leads").
			WithArgs(lead.ID, lead.Name, lead.Email, "", "", "Investor", lead.Message, now).
			WillReturnRows(rows)

		out, err := repo.Create(ctx, lead)

		assert.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, lead.ID, out.ID)
		assert.Equal(t, model.InterestInvestor, out.Interest)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO leads").WillReturnError(errors.New("check constraint"))

		out, err := repo.Create(ctx, lead)

		assert.Error(t, err)
		assert.Nil(t, out)
	})
}
