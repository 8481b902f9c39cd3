package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func ns(mt *mtest.T, collection string) string {
	return mt.DB.Name() + "." + collection
}

func TestTeamMongo(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, teamCollection), mtest.FirstBatch,
			bson.D{{Key: "id", Value: "onkar-singh"}, {Key: "name", Value: "Onkar Singh"}, {Key: "role", Value: "Founder & CEO"}, {Key: "bio", Value: "bio"}},
			bson.D{{Key: "id", Value: "anthony"}, {Key: "name", Value: "Anthony"}, {Key: "role", Value: "Vice President"}, {Key: "bio", Value: "bio"}},
		))

		items, err := NewTeamMongo(mt.DB).List(ctx)

		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, "onkar-singh", items[0].ID)
		assert.Equal(mt, "Vice President", items[1].Role)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, teamCollection), mtest.FirstBatch))

		items, err := NewTeamMongo(mt.DB).List(ctx)

		require.NoError(mt, err)
		assert.NotNil(mt, items)
		assert.Empty(mt, items)
	})

	mt.Run("replace", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(4)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
		)

		err := NewTeamMongo(mt.DB).Replace(ctx, []model.TeamMember{{ID: "a", Name: "A", Role: "CEO"}})

		assert.NoError(mt, err)
	})
}

func TestProjectMongo(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, projectsCollection), mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: "628-summit"},
				{Key: "name", Value: "628 Summit Avenue (Singh Tower)"},
				{Key: "address", Value: "628 Summit Avenue, Jersey City"},
				{Key: "category", Value: "Featured"},
				{Key: "units", Value: int32(200)},
				{Key: "created_at", Value: primitive.NewDateTimeFromTime(time.Now())},
			},
		))

		items, err := NewProjectMongo(mt.DB).List(ctx, repository.ProjectQuery{Category: model.CategoryFeatured})

		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, model.CategoryFeatured, items[0].Category)
		require.NotNil(mt, items[0].Units)
		assert.Equal(mt, 200, *items[0].Units)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, projectsCollection), mtest.FirstBatch,
			bson.D{{Key: "id", Value: "nanak-niwas"}, {Key: "name", Value: "Nanak Niwas"}, {Key: "category", Value: "Completed"}},
		))

		p, err := NewProjectMongo(mt.DB).FindByID(ctx, "nanak-niwas")

		require.NoError(mt, err)
		assert.Equal(mt, "Nanak Niwas", p.Name)
		assert.Nil(mt, p.Units)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, projectsCollection), mtest.FirstBatch))

		p, err := NewProjectMongo(mt.DB).FindByID(ctx, "missing")

		assert.ErrorIs(mt, err, repository.ErrNotFound)
		assert.Nil(mt, p)
	})

	mt.Run("replace insert failure", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}),
		)

		err := NewProjectMongo(mt.DB).Replace(ctx, []model.Project{{ID: "x", Name: "X", Category: model.CategoryUpcoming}})

		assert.ErrorContains(mt, err, "insert into projects")
	})
}

func TestProjectFilter(t *testing.T) {
	assert.Empty(t, projectFilter(repository.ProjectQuery{}))

	f := projectFilter(repository.ProjectQuery{Category: model.CategoryCompleted, Search: "lake st."})
	assert.Equal(t, "Completed", f["category"])

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	re := or[0].(bson.M)["name"].(primitive.Regex)
	assert.Equal(t, `lake st\.`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestNewsMongo(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, newsCollection), mtest.FirstBatch,
			bson.D{{Key: "id", Value: "singh-tower-completion"}, {Key: "title", Value: "Singh Tower"}, {Key: "date", Value: "2025"}, {Key: "content", Value: "c"}},
			bson.D{{Key: "id", Value: "10-year-anniversary"}, {Key: "title", Value: "10 Years"}, {Key: "date", Value: "2020"}, {Key: "content", Value: "c"}},
		))

		items, err := NewNewsMongo(mt.DB).List(ctx)

		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, "2025", items[0].Date)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, newsCollection), mtest.FirstBatch))

		a, err := NewNewsMongo(mt.DB).FindByID(ctx, "missing")

		assert.ErrorIs(mt, err, repository.ErrNotFound)
		assert.Nil(mt, a)
	})
}

func TestLeadMongo_Create(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()
	lead := &model.Lead{ID: "id-1", Name: "Jane", Email: "jane@example.com", Interest: model.InterestTenant, Message: "hi"}

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		out, err := NewLeadMongo(mt.DB).Create(ctx, lead)

		require.NoError(mt, err)
		assert.Equal(mt, lead.ID, out.ID)
		assert.NotSame(mt, lead, out)
	})

	mt.Run("duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))

		out, err := NewLeadMongo(mt.DB).Create(ctx, lead)

		assert.Error(mt, err)
		assert.Nil(mt, out)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMock(t)

	mt.Run("creates indexes on every collection", func(mt *mtest.T) {
		for i := 0; i < 4; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}
		assert.NoError(mt, EnsureIndexes(context.Background(), mt.DB))
	})

	mt.Run("reports failing collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		err := EnsureIndexes(context.Background(), mt.DB)

		assert.ErrorContains(mt, err, "create indexes on team")
	})
}
