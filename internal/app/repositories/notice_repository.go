package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
)

// MongoNoticeRepository implements NoticeRepository
type MongoNoticeRepository struct {
	coll *mongo.Collection
}

// NewNoticeRepository creates a notice repository on db, which may live on
// a different cluster than the student records
func NewNoticeRepository(db *mongo.Database) *MongoNoticeRepository {
	return &MongoNoticeRepository{coll: db.Collection(models.CollectionNotices)}
}

// List returns all notices, newest first
func (r *MongoNoticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("error listing notices: %w", err)
	}
	notices := make([]models.Notice, 0)
	if err := cur.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("error decoding notices: %w", err)
	}
	return notices, nil
}

// GetByID returns one notice
func (r *MongoNoticeRepository) GetByID(ctx context.Context, id string) (*models.Notice, error) {
	oid, err := noticeObjectID(id)
	if err != nil {
		return nil, err
	}
	var n models.Notice
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrNoticeNotFound, "notice not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving notice: %w", err)
	}
	return &n, nil
}

// Create inserts a notice and sets its ID
func (r *MongoNoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	res, err := r.coll.InsertOne(ctx, notice)
	if err != nil {
		return fmt.Errorf("error inserting notice: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		notice.ID = oid
	}
	return nil
}

// Update replaces the mutable fields and returns the stored notice
func (r *MongoNoticeRepository) Update(ctx context.Context, id string, update models.NoticeUpdate, at time.Time) (*models.Notice, error) {
	oid, err := noticeObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"$set": bson.M{
		"title":     update.Title,
		"content":   update.Content,
		"type":      update.Type,
		"priority":  update.Priority,
		"updatedAt": at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notice
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, set, opts).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrNoticeNotFound, "notice not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error updating notice: %w", err)
	}
	return &n, nil
}

// Delete removes a notice
func (r *MongoNoticeRepository) Delete(ctx context.Context, id string) error {
	oid, err := noticeObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError(apperrors.ErrNoticeNotFound, "notice not found")
	}
	return nil
}

// Count returns the number of notices
func (r *MongoNoticeRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func noticeObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewNotFoundError(apperrors.ErrNoticeNotFound, "notice not found")
	}
	return oid, nil
}
