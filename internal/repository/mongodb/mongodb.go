// Package mongodb implements the repositories on MongoDB. Every collection keys its
// documents by a string "id" field alongside the driver-assigned _id.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	teamCollection     = "team"
	projectsCollection = "projects"
	newsCollection     = "news"
	leadsCollection    = "contact_forms"
)

// EnsureIndexes creates the unique id index on every collection plus the listing indexes.
// It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}

	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{teamCollection, []mongo.IndexModel{unique}},
		{projectsCollection, []mongo.IndexModel{unique, {Keys: bson.D{{Key: "category", Value: 1}}}}},
		{newsCollection, []mongo.IndexModel{unique, {Keys: bson.D{{Key: "date", Value: -1}}}}},
		{leadsCollection, []mongo.IndexModel{unique, {Keys: bson.D{{Key: "created_at", Value: 1}}}}},
	}
	for _, s := range specs {
		if _, err := db.Collection(s.collection).Indexes().CreateMany(ctx, s.models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", s.collection, err)
		}
	}
	return nil
}

// replaceCollection clears col and inserts docs. Standalone servers have no
// multi-document transactions, so a failure can leave the collection partially filled;
// rerunning the seed fixes it.
func replaceCollection(ctx context.Context, col *mongo.Collection, docs []any) error {
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", col.Name(), err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert into %s: %w", col.Name(), err)
	}
	return nil
}
