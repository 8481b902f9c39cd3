package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

type teamDoc struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Role      string    `bson:"role"`
	Bio       string    `bson:"bio"`
	ImageURL  string    `bson:"image_url,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d teamDoc) toModel() model.TeamMember {
	return model.TeamMember{ID: d.ID, Name: d.Name, Role: d.Role, Bio: d.Bio, ImageURL: d.ImageURL, CreatedAt: d.CreatedAt}
}

// TeamMongo is a MongoDB implementation of repository.TeamRepository.
type TeamMongo struct {
	col *mongo.Collection
}

// NewTeamMongo creates a repository over the "team" collection of db.
func NewTeamMongo(db *mongo.Database) *TeamMongo {
	return &TeamMongo{col: db.Collection(teamCollection)}
}

var _ repository.TeamRepository = (*TeamMongo)(nil)

func (r *TeamMongo) List(ctx context.Context) ([]model.TeamMember, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}}).
		SetLimit(repository.MaxTeam)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []teamDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]model.TeamMember, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *TeamMongo) Replace(ctx context.Context, members []model.TeamMember) error {
	docs := make([]any, 0, len(members))
	for _, m := range members {
		docs = append(docs, teamDoc{ID: m.ID, Name: m.Name, Role: m.Role, Bio: m.Bio, ImageURL: m.ImageURL, CreatedAt: m.CreatedAt})
	}
	return replaceCollection(ctx, r.col, docs)
}
