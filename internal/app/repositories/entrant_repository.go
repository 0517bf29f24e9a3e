package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gcett/studentdir/internal/app/models"
)

// MongoEntrantRepository implements EntrantRepository
type MongoEntrantRepository struct {
	coll *mongo.Collection
}

// NewEntrantRepository creates a skill-test entrant repository
func NewEntrantRepository(db *mongo.Database) *MongoEntrantRepository {
	return &MongoEntrantRepository{coll: db.Collection(models.CollectionEntrants)}
}

// EnsureIndexes creates the unique email index
func (r *MongoEntrantRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("skill_test_entrants_email_key"),
	})
	if err != nil {
		return fmt.Errorf("failed to create entrant indexes: %w", err)
	}
	return nil
}

// Upsert records a submission by email, accumulating categories
func (r *MongoEntrantRepository) Upsert(ctx context.Context, email, name, category string, at time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"name":            name,
			"lastSubmittedAt": at,
		},
		"$addToSet": bson.M{"categories": category},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting entrant: %w", err)
	}
	return nil
}

// Emails returns every distinct entrant email
func (r *MongoEntrantRepository) Emails(ctx context.Context) ([]string, error) {
	return distinctStrings(ctx, r.coll, "email")
}
