package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
)

// MongoQuestionRepository implements QuestionRepository
type MongoQuestionRepository struct {
	coll *mongo.Collection
}

// NewQuestionRepository creates a skill-test question repository
func NewQuestionRepository(db *mongo.Database) *MongoQuestionRepository {
	return &MongoQuestionRepository{coll: db.Collection(models.CollectionQuestions)}
}

// List returns questions in creation order, optionally for one test type
func (r *MongoQuestionRepository) List(ctx context.Context, testType string) ([]models.SkillTestQuestion, error) {
	filter := bson.M{}
	if testType != "" {
		filter["testType"] = testType
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	questions := make([]models.SkillTestQuestion, 0)
	if err := cur.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("error decoding questions: %w", err)
	}
	return questions, nil
}

// Create inserts a question and sets its ID
func (r *MongoQuestionRepository) Create(ctx context.Context, q *models.SkillTestQuestion) error {
	res, err := r.coll.InsertOne(ctx, q)
	if err != nil {
		return fmt.Errorf("error inserting question: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		q.ID = oid
	}
	return nil
}

// Update replaces a question's content, keeping its creation time, and
// returns the stored question
func (r *MongoQuestionRepository) Update(ctx context.Context, q *models.SkillTestQuestion) (*models.SkillTestQuestion, error) {
	set := bson.M{"$set": bson.M{
		"question":      q.Question,
		"options":       q.Options,
		"correctAnswer": q.CorrectAnswer,
		"difficulty":    q.Difficulty,
		"testType":      q.TestType,
		"updatedAt":     q.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var stored models.SkillTestQuestion
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": q.ID}, set, opts).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrQuestionNotFound, "question not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error updating question: %w", err)
	}
	return &stored, nil
}

// Delete removes a question
func (r *MongoQuestionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewNotFoundError(apperrors.ErrQuestionNotFound, "question not found")
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting question: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError(apperrors.ErrQuestionNotFound, "question not found")
	}
	return nil
}

// Count returns the number of questions
func (r *MongoQuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
