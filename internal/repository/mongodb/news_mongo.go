package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

type newsDoc struct {
	ID           string    `bson:"id"`
	Title        string    `bson:"title"`
	Date         string    `bson:"date"`
	ShortContent string    `bson:"short_content,omitempty"`
	Content      string    `bson:"content"`
	ImageURL     string    `bson:"image_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d newsDoc) toModel() model.NewsArticle {
	return model.NewsArticle{
		ID:           d.ID,
		Title:        d.Title,
		Date:         d.Date,
		ShortContent: d.ShortContent,
		Content:      d.Content,
		ImageURL:     d.ImageURL,
		CreatedAt:    d.CreatedAt,
	}
}

// NewsMongo is a MongoDB implementation of repository.NewsRepository.
type NewsMongo struct {
	col *mongo.Collection
}

// NewNewsMongo creates a repository over the "news" collection of db.
func NewNewsMongo(db *mongo.Database) *NewsMongo {
	return &NewsMongo{col: db.Collection(newsCollection)}
}

var _ repository.NewsRepository = (*NewsMongo)(nil)

func (r *NewsMongo) List(ctx context.Context) ([]model.NewsArticle, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(repository.MaxNews)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []newsDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]model.NewsArticle, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *NewsMongo) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	var d newsDoc
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	a := d.toModel()
	return &a, nil
}

func (r *NewsMongo) Replace(ctx context.Context, articles []model.NewsArticle) error {
	docs := make([]any, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, newsDoc{
			ID:           a.ID,
			Title:        a.Title,
			Date:         a.Date,
			ShortContent: a.ShortContent,
			Content:      a.Content,
			ImageURL:     a.ImageURL,
			CreatedAt:    a.CreatedAt,
		})
	}
	return replaceCollection(ctx, r.col, docs)
}
