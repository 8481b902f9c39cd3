package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

type leadDoc struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone,omitempty"`
	Company   string    `bson:"company,omitempty"`
	Interest  string    `bson:"interest"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

// LeadMongo is a MongoDB implementation of repository.LeadRepository.
type LeadMongo struct {
	col *mongo.Collection
}

// NewLeadMongo creates a repository over the "contact_forms" collection of db.
func NewLeadMongo(db *mongo.Database) *LeadMongo {
	return &LeadMongo{col: db.Collection(leadsCollection)}
}

var _ repository.LeadRepository = (*LeadMongo)(nil)

func (r *LeadMongo) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	doc := leadDoc{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Company:   lead.Company,
		Interest:  string(lead.Interest),
		Message:   lead.Message,
		CreatedAt: lead.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	out := *lead
	return &out, nil
}
