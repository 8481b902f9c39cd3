package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

type projectDoc struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	Address     string    `bson:"address"`
	Category    string    `bson:"category"`
	Units       *int      `bson:"units,omitempty"`
	SquareFeet  string    `bson:"square_feet,omitempty"`
	Year        string    `bson:"year,omitempty"`
	Status      string    `bson:"status,omitempty"`
	Description string    `bson:"description,omitempty"`
	ImageURL    string    `bson:"image_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d projectDoc) toModel() model.Project {
	return model.Project{
		ID:          d.ID,
		Name:        d.Name,
		Address:     d.Address,
		Category:    model.ProjectCategory(d.Category),
		Units:       d.Units,
		SquareFeet:  d.SquareFeet,
		Year:        d.Year,
		Status:      d.Status,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
	}
}

func projectToDoc(p model.Project) projectDoc {
	return projectDoc{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Category:    string(p.Category),
		Units:       p.Units,
		SquareFeet:  p.SquareFeet,
		Year:        p.Year,
		Status:      p.Status,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

// ProjectMongo is a MongoDB implementation of repository.ProjectRepository.
type ProjectMongo struct {
	col *mongo.Collection
}

// NewProjectMongo creates a repository over the "projects" collection of db.
func NewProjectMongo(db *mongo.Database) *ProjectMongo {
	return &ProjectMongo{col: db.Collection(projectsCollection)}
}

var _ repository.ProjectRepository = (*ProjectMongo)(nil)

func projectFilter(q repository.ProjectQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = string(q.Category)
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{bson.M{"name": re}, bson.M{"address": re}}
	}
	return filter
}

func (r *ProjectMongo) List(ctx context.Context, q repository.ProjectQuery) ([]model.Project, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}}).
		SetLimit(repository.MaxProjects)
	cur, err := r.col.Find(ctx, projectFilter(q), opts)
	if err != nil {
		return nil, err
	}
	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]model.Project, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *ProjectMongo) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var d projectDoc
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p := d.toModel()
	return &p, nil
}

func (r *ProjectMongo) Replace(ctx context.Context, projects []model.Project) error {
	docs := make([]any, 0, len(projects))
	for _, p := range projects {
		docs = append(docs, projectToDoc(p))
	}
	return replaceCollection(ctx, r.col, docs)
}
