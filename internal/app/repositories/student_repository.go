package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/dberrors"
	"github.com/gcett/studentdir/internal/pkg/helpers"
	"github.com/gcett/studentdir/internal/pkg/validation"
)

// Unique index names on the students collection
const (
	StudentEmailIndex = "students_email_key"
	StudentPhoneIndex = "students_phone_key"
)

var (
	trendingProjection = bson.D{
		{Key: "fullName", Value: 1},
		{Key: "homeTown", Value: 1},
		{Key: "department", Value: 1},
	}
	searchProjection = bson.D{
		{Key: "fullName", Value: 1},
		{Key: "homeTown", Value: 1},
		{Key: "department", Value: 1},
		{Key: "phone", Value: 1},
	}
	newestFirst = bson.D{{Key: "createdAt", Value: -1}}
)

// MongoStudentRepository implements StudentRepository on a Mongo collection
type MongoStudentRepository struct {
	coll *mongo.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *mongo.Database) *MongoStudentRepository {
	return &MongoStudentRepository{coll: db.Collection(models.CollectionStudents)}
}

// EnsureIndexes creates the unique email and phone indexes
func (r *MongoStudentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(StudentEmailIndex),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(StudentPhoneIndex),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("students_created_at_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}
	return nil
}

// Create inserts a student and sets its ID
func (r *MongoStudentRepository) Create(ctx context.Context, student *models.Student) error {
	res, err := r.coll.InsertOne(ctx, student)
	if err != nil {
		if index, ok := dberrors.DuplicateIndex(err, StudentEmailIndex, StudentPhoneIndex); ok {
			return &DuplicateKeyError{Field: fieldForIndex(index), Err: err}
		}
		return fmt.Errorf("error inserting student: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

// Exists reports whether any student has value in field
func (r *MongoStudentRepository) Exists(ctx context.Context, field models.DuplicateField, value string) (bool, error) {
	filter, err := duplicateFilter(field, value)
	if err != nil {
		return false, err
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking %s: %w", field, err)
	}
	return n > 0, nil
}

// FindDuplicate looks for a student sharing email, phone or roll suffix
func (r *MongoStudentRepository) FindDuplicate(ctx context.Context, email, phone, rollLastTwo string) (models.DuplicateField, bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"phone": phone},
		bson.M{"wbjeeRollLastTwo": rollLastTwo},
	}}
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "email", Value: 1},
		{Key: "phone", Value: 1},
		{Key: "wbjeeRollLastTwo", Value: 1},
	})

	var existing models.Student
	err := r.coll.FindOne(ctx, filter, opts).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error checking duplicates: %w", err)
	}

	switch {
	case existing.Email == email:
		return models.DuplicateFieldEmail, true, nil
	case existing.Phone == phone:
		return models.DuplicateFieldPhone, true, nil
	default:
		return models.DuplicateFieldWbjeeRoll, true, nil
	}
}

// List returns students matching filter, newest first
func (r *MongoStudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	cur, err := r.coll.Find(ctx, studentListFilter(filter), options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return decodeStudents(ctx, cur)
}

// Recent returns the newest students with the trending projection
func (r *MongoStudentRepository) Recent(ctx context.Context, limit int64) ([]models.Student, error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetLimit(limit).
		SetProjection(trendingProjection)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent students: %w", err)
	}
	return decodeStudents(ctx, cur)
}

// Search returns students whose name, home town or phone contains query
func (r *MongoStudentRepository) Search(ctx context.Context, query string, limit int64) ([]models.Student, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(searchProjection)

	cur, err := r.coll.Find(ctx, suggestionFilter(query), opts)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	return decodeStudents(ctx, cur)
}

// FindByEmail returns the student registered with email
func (r *MongoStudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	var s models.Student
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound, "email not registered")
	}
	if err != nil {
		return nil, fmt.Errorf("error finding student: %w", err)
	}
	return &s, nil
}

// SetInterestsOnce updates interests only while interestsUpdated is unset
func (r *MongoStudentRepository) SetInterestsOnce(ctx context.Context, email string, interests []string) error {
	if interests == nil {
		interests = []string{}
	}
	filter := bson.M{
		"email":            email,
		"interestsUpdated": bson.M{"$ne": true},
	}
	update := bson.M{"$set": bson.M{
		"interests":        interests,
		"interestsUpdated": true,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating interests: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	// Nothing matched: tell a missing student apart from a spent update
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(apperrors.ErrStudentNotFound, "email not registered")
	}
	return apperrors.ErrInterestsAlreadyUpdated
}

// Emails returns every distinct student email
func (r *MongoStudentRepository) Emails(ctx context.Context) ([]string, error) {
	return distinctStrings(ctx, r.coll, "email")
}

// Count returns the number of students
func (r *MongoStudentRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}

func decodeStudents(ctx context.Context, cur *mongo.Cursor) ([]models.Student, error) {
	students := make([]models.Student, 0)
	if err := cur.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

func distinctStrings(ctx context.Context, coll *mongo.Collection, field string) ([]string, error) {
	values, err := coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing %s values: %w", field, err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// containsRegex matches s anywhere, case-insensitively, with regex
// metacharacters taken literally
func containsRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func duplicateFilter(field models.DuplicateField, value string) (bson.M, error) {
	value = strings.TrimSpace(value)
	switch field {
	case models.DuplicateFieldEmail:
		return bson.M{"email": strings.ToLower(value)}, nil
	case models.DuplicateFieldPhone:
		return bson.M{"phone": value}, nil
	case models.DuplicateFieldWbjeeRoll:
		return bson.M{"wbjeeRollLastTwo": helpers.LastN(value, 2)}, nil
	default:
		return nil, apperrors.NewValidationError("field", "field must be one of: email, phone, wbjeeRoll")
	}
}

func studentListFilter(f models.StudentFilter) bson.M {
	filter := bson.M{}

	if q := strings.TrimSpace(f.Search); q != "" {
		filter["$or"] = bson.A{
			bson.M{"fullName": containsRegex(q)},
			bson.M{"wbjeeRollLastTwo": containsRegex(q)},
		}
	}
	if d := strings.TrimSpace(f.Department); d != "" && d != validation.AllDepartments {
		filter["department"] = d
	}
	if y := strings.TrimSpace(f.Year); y != "" && y != validation.AllYears {
		filter["currentYear"] = y
	}
	if i := strings.TrimSpace(f.Interest); i != "" && i != validation.AllInterests {
		filter["interests"] = bson.M{"$in": bson.A{i}}
	}

	return filter
}

func suggestionFilter(q string) bson.M {
	re := containsRegex(strings.TrimSpace(q))
	return bson.M{"$or": bson.A{
		bson.M{"fullName": re},
		bson.M{"homeTown": re},
		bson.M{"phone": re},
	}}
}

func fieldForIndex(index string) models.DuplicateField {
	switch index {
	case StudentEmailIndex:
		return models.DuplicateFieldEmail
	case StudentPhoneIndex:
		return models.DuplicateFieldPhone
	default:
		return ""
	}
}
