package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/gcett/studentdir/internal/app/models"
)

// DuplicateKeyError is returned when an insert violates a unique index.
// Field is empty when the index could not be identified.
type DuplicateKeyError struct {
	Field models.DuplicateField
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on %q: %v", e.Field, e.Err)
}

func (e *DuplicateKeyError) Unwrap() error { return e.Err }

// EmailSource lists every email address a store knows about
type EmailSource interface {
	Emails(ctx context.Context) ([]string, error)
}

// StudentRepository is the record store for student profiles
type StudentRepository interface {
	EmailSource
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, student *models.Student) error
	Exists(ctx context.Context, field models.DuplicateField, value string) (bool, error)
	// FindDuplicate reports the first field among email, phone and roll
	// suffix that is already taken
	FindDuplicate(ctx context.Context, email, phone, rollLastTwo string) (models.DuplicateField, bool, error)
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	Recent(ctx context.Context, limit int64) ([]models.Student, error)
	Search(ctx context.Context, query string, limit int64) ([]models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	// SetInterestsOnce replaces interests and raises interestsUpdated in one
	// conditional write
	SetInterestsOnce(ctx context.Context, email string, interests []string) error
	Count(ctx context.Context) (int64, error)
}

// NoticeRepository stores notices
type NoticeRepository interface {
	List(ctx context.Context) ([]models.Notice, error)
	GetByID(ctx context.Context, id string) (*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Update(ctx context.Context, id string, update models.NoticeUpdate, at time.Time) (*models.Notice, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// QuestionRepository stores skill-test questions
type QuestionRepository interface {
	List(ctx context.Context, testType string) ([]models.SkillTestQuestion, error)
	Create(ctx context.Context, question *models.SkillTestQuestion) error
	Update(ctx context.Context, question *models.SkillTestQuestion) (*models.SkillTestQuestion, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// EntrantRepository stores skill-test participants
type EntrantRepository interface {
	EmailSource
	EnsureIndexes(ctx context.Context) error
	Upsert(ctx context.Context, email, name, category string, at time.Time) error
}

// SubmissionRepository stores skill-test submissions
type SubmissionRepository interface {
	EmailSource
	Create(ctx context.Context, submission *models.Submission) error
	List(ctx context.Context, offset, limit uint64) ([]models.Submission, int64, error)
}
