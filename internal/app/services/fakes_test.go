package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/email"
	"github.com/gcett/studentdir/internal/pkg/helpers"
)

var errBoom = errors.New("boom")

// fakeStudentRepo enforces unique email and phone like the real indexes
type fakeStudentRepo struct {
	mu       sync.Mutex
	students []models.Student

	findDuplicateErr error
	existsErr        error
	listErr          error
	searchErr        error
	emailsErr        error
	skipPreCheck     bool
}

func (r *fakeStudentRepo) EnsureIndexes(context.Context) error { return nil }

func (r *fakeStudentRepo) Create(_ context.Context, s *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.students {
		if existing.Email == s.Email {
			return &repositories.DuplicateKeyError{Field: models.DuplicateFieldEmail, Err: errBoom}
		}
		if existing.Phone == s.Phone {
			return &repositories.DuplicateKeyError{Field: models.DuplicateFieldPhone, Err: errBoom}
		}
	}
	s.ID = primitive.NewObjectID()
	r.students = append(r.students, *s)
	return nil
}

func (r *fakeStudentRepo) Exists(_ context.Context, field models.DuplicateField, value string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		switch field {
		case models.DuplicateFieldEmail:
			if s.Email == strings.ToLower(value) {
				return true, nil
			}
		case models.DuplicateFieldPhone:
			if s.Phone == value {
				return true, nil
			}
		case models.DuplicateFieldWbjeeRoll:
			if s.WbjeeRollLastTwo == helpers.LastN(value, 2) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) FindDuplicate(_ context.Context, email, phone, roll string) (models.DuplicateField, bool, error) {
	if r.findDuplicateErr != nil {
		return "", false, r.findDuplicateErr
	}
	if r.skipPreCheck {
		return "", false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		switch {
		case s.Email == email:
			return models.DuplicateFieldEmail, true, nil
		case s.Phone == phone:
			return models.DuplicateFieldPhone, true, nil
		case s.WbjeeRollLastTwo == roll:
			return models.DuplicateFieldWbjeeRoll, true, nil
		}
	}
	return "", false, nil
}

func (r *fakeStudentRepo) newestFirst() []models.Student {
	out := append([]models.Student(nil), r.students...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeStudentRepo) List(_ context.Context, f models.StudentFilter) ([]models.Student, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Student
	for _, s := range r.newestFirst() {
		if f.Department != "" && f.Department != s.Department {
			continue
		}
		if f.Search != "" && !containsFold(s.FullName, f.Search) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStudentRepo) Recent(_ context.Context, limit int64) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.newestFirst()
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Phone = ""
	}
	return out, nil
}

func (r *fakeStudentRepo) Search(_ context.Context, q string, limit int64) ([]models.Student, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Student
	for _, s := range r.students {
		if containsFold(s.FullName, q) || containsFold(s.HomeTown, q) || containsFold(s.Phone, q) {
			out = append(out, s)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.Email == email {
			s := s
			return &s, nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound, "email not registered")
}

func (r *fakeStudentRepo) SetInterestsOnce(_ context.Context, email string, interests []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.students {
		if r.students[i].Email != email {
			continue
		}
		if r.students[i].InterestsUpdated {
			return apperrors.ErrInterestsAlreadyUpdated
		}
		r.students[i].Interests = interests
		r.students[i].InterestsUpdated = true
		return nil
	}
	return apperrors.NewNotFoundError(apperrors.ErrStudentNotFound, "email not registered")
}

func (r *fakeStudentRepo) Emails(context.Context) ([]string, error) {
	if r.emailsErr != nil {
		return nil, r.emailsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s.Email)
	}
	return out, nil
}

func (r *fakeStudentRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.students)), nil
}

func (r *fakeStudentRepo) count() int {
	n, _ := r.Count(context.Background())
	return int(n)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

type fakeNoticeRepo struct {
	mu        sync.Mutex
	notices   []models.Notice
	createErr error
}

func (r *fakeNoticeRepo) List(context.Context) ([]models.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notice(nil), r.notices...), nil
}

func (r *fakeNoticeRepo) GetByID(_ context.Context, id string) (*models.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notices {
		if n.ID.Hex() == id {
			n := n
			return &n, nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.ErrNoticeNotFound, "notice not found")
}

func (r *fakeNoticeRepo) Create(_ context.Context, n *models.Notice) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = primitive.NewObjectID()
	r.notices = append(r.notices, *n)
	return nil
}

func (r *fakeNoticeRepo) Update(_ context.Context, id string, u models.NoticeUpdate, at time.Time) (*models.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notices {
		if r.notices[i].ID.Hex() == id {
			n := &r.notices[i]
			n.Title, n.Content, n.Type, n.Priority, n.UpdatedAt = u.Title, u.Content, u.Type, u.Priority, at
			out := *n
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.ErrNoticeNotFound, "notice not found")
}

func (r *fakeNoticeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notices {
		if r.notices[i].ID.Hex() == id {
			r.notices = append(r.notices[:i], r.notices[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(apperrors.ErrNoticeNotFound, "notice not found")
}

func (r *fakeNoticeRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.notices)), nil
}

type fakeQuestionRepo struct {
	questions []models.SkillTestQuestion
}

func (r *fakeQuestionRepo) List(_ context.Context, testType string) ([]models.SkillTestQuestion, error) {
	var out []models.SkillTestQuestion
	for _, q := range r.questions {
		if testType == "" || q.TestType == testType {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *models.SkillTestQuestion) error {
	q.ID = primitive.NewObjectID()
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, q *models.SkillTestQuestion) (*models.SkillTestQuestion, error) {
	for i := range r.questions {
		if r.questions[i].ID == q.ID {
			created := r.questions[i].CreatedAt
			r.questions[i] = *q
			r.questions[i].CreatedAt = created
			out := r.questions[i]
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.ErrQuestionNotFound, "question not found")
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id string) error {
	for i := range r.questions {
		if r.questions[i].ID.Hex() == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(apperrors.ErrQuestionNotFound, "question not found")
}

func (r *fakeQuestionRepo) Count(context.Context) (int64, error) {
	return int64(len(r.questions)), nil
}

type fakeEntrantRepo struct {
	mu        sync.Mutex
	entrants  map[string][]string
	upsertErr error
}

func (r *fakeEntrantRepo) EnsureIndexes(context.Context) error { return nil }

func (r *fakeEntrantRepo) Upsert(_ context.Context, email, _, category string, _ time.Time) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entrants == nil {
		r.entrants = make(map[string][]string)
	}
	r.entrants[email] = append(r.entrants[email], category)
	return nil
}

func (r *fakeEntrantRepo) Emails(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for e := range r.entrants {
		out = append(out, e)
	}
	sort.Strings(out)
	return out, nil
}

type fakeSubmissionRepo struct {
	mu          sync.Mutex
	submissions []models.Submission
	createErr   error
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *models.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, *s)
	return nil
}

func (r *fakeSubmissionRepo) List(_ context.Context, offset, limit uint64) ([]models.Submission, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := int64(len(r.submissions))
	if offset >= uint64(total) {
		return []models.Submission{}, total, nil
	}
	end := offset + limit
	if end > uint64(total) {
		end = uint64(total)
	}
	return append([]models.Submission(nil), r.submissions[offset:end]...), total, nil
}

func (r *fakeSubmissionRepo) Emails(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.submissions {
		out = append(out, s.Email)
	}
	return out, nil
}

type staticEmails struct {
	emails []string
	err    error
}

func (s staticEmails) Emails(context.Context) ([]string, error) { return s.emails, s.err }

// fakeStorage records uploads. Uploads for names listed in failFor fail.
type fakeStorage struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
	failFor map[string]bool
}

func (s *fakeStorage) SaveFileWithPath(ctx context.Context, fh *multipart.FileHeader, subPath string) (string, error) {
	return s.SaveFileAs(ctx, fh, subPath, "generated_"+fh.Filename)
}

func (s *fakeStorage) SaveFileAs(_ context.Context, fh *multipart.FileHeader, subPath, name string) (string, error) {
	if s.failFor[fh.Filename] {
		return "", fmt.Errorf("upload %s: %w", fh.Filename, errBoom)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	url := "/uploads/" + subPath + "/" + name
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) messages() []email.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Message(nil), m.sent...)
}

// newFileHeader builds a real multipart.FileHeader
func newFileHeader(t *testing.T, field, filename string, size int) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(int64(size)+1024))
	t.Cleanup(func() {
		if req.MultipartForm != nil {
			_ = req.MultipartForm.RemoveAll()
		}
	})

	return req.MultipartForm.File[field][0]
}
