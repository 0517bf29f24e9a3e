package services

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/filestorage"
	"github.com/gcett/studentdir/internal/pkg/helpers"
	"github.com/gcett/studentdir/internal/pkg/validation"
)

// Suggestion limits
const (
	TrendingLimit   = 5
	SuggestionLimit = 8
)

// ProfilePhotoPath is the storage folder for registration photos
const ProfilePhotoPath = "profile_photos"

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var duplicateMessages = map[models.DuplicateField]string{
	models.DuplicateFieldEmail:     "This email is already registered",
	models.DuplicateFieldPhone:     "This phone number is already registered",
	models.DuplicateFieldWbjeeRoll: "A student with this WBJEE roll number is already registered",
}

// StudentService defines the directory operations
type StudentService interface {
	// CheckDuplicate reports whether value is taken. Storage failures read
	// as false; the unique indexes remain the final word at insert time.
	CheckDuplicate(ctx context.Context, field models.DuplicateField, value string) bool
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error)
	// ListStudents never fails; query errors yield an empty list
	ListStudents(ctx context.Context, query dto.ListStudentsQuery, isAdmin bool) []dto.StudentResponse
	// Suggest never fails; query errors yield no suggestions
	Suggest(ctx context.Context, q string, isAdmin bool) dto.SuggestionsResponse
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo  repositories.StudentRepository
	photoStorage filestorage.FileStorage
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.StudentRepository,
	photoStorage filestorage.FileStorage,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo:  studentRepo,
		photoStorage: photoStorage,
		logger:       logger,
	}
}

// CheckDuplicate implements StudentService
func (s *studentServiceImpl) CheckDuplicate(ctx context.Context, field models.DuplicateField, value string) bool {
	if !field.Valid() || strings.TrimSpace(value) == "" {
		return false
	}
	exists, err := s.studentRepo.Exists(ctx, field, value)
	if err != nil {
		s.logger.Error().Err(err).Str("field", string(field)).Msg("Duplicate check failed")
		return false
	}
	return exists
}

// Register implements StudentService
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	interests, err := parseInterests(req.Interests)
	if err != nil {
		return nil, err
	}
	if err := validatePhoto(req.ProfilePhoto); err != nil {
		return nil, err
	}

	student := &models.Student{
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		WbjeeRollLastTwo: helpers.LastN(req.WbjeeRoll, 2),
		HomeTown:         strings.TrimSpace(req.HomeTown),
		Department:       req.Department,
		CurrentYear:      req.CurrentYear,
		Interests:        interests,
	}

	field, found, err := s.studentRepo.FindDuplicate(ctx, student.Email, student.Phone, student.WbjeeRollLastTwo)
	switch {
	case err != nil:
		// The unique indexes still guard email and phone
		s.logger.Error().Err(err).Str("email", student.Email).Msg("Duplicate pre-check failed, continuing")
	case found:
		return nil, duplicateError(field)
	}

	photoURL, err := s.photoStorage.SaveFileWithPath(ctx, req.ProfilePhoto, ProfilePhotoPath)
	if err != nil {
		s.logger.Error().Err(err).Str("email", student.Email).Msg("Profile photo upload failed")
		return nil, apperrors.NewStorageError(err)
	}
	student.ProfilePhotoURL = photoURL
	student.CreatedAt = helpers.NowUTC()

	if err := s.studentRepo.Create(ctx, student); err != nil {
		s.discardPhoto(photoURL)

		var dup *repositories.DuplicateKeyError
		if errors.As(err, &dup) {
			return nil, duplicateError(dup.Field)
		}
		s.logger.Error().Err(err).Str("email", student.Email).Msg("Failed to insert student")
		return nil, apperrors.NewStorageError(err)
	}

	s.logger.Info().
		Str("id", student.ID.Hex()).
		Str("department", student.Department).
		Msg("Student registered")
	return &dto.RegisterStudentResponse{ID: student.ID.Hex()}, nil
}

// discardPhoto removes an orphaned upload on a best-effort basis
func (s *studentServiceImpl) discardPhoto(url string) {
	if err := s.photoStorage.DeleteFile(context.Background(), url); err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("Failed to remove orphaned profile photo")
	}
}

// ListStudents implements StudentService
func (s *studentServiceImpl) ListStudents(ctx context.Context, query dto.ListStudentsQuery, isAdmin bool) []dto.StudentResponse {
	students, err := s.studentRepo.List(ctx, models.StudentFilter{
		Search:     query.Search,
		Department: query.Department,
		Year:       query.Year,
		Interest:   query.Interest,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list students")
		return []dto.StudentResponse{}
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		phone := st.Phone
		if !isAdmin {
			phone = helpers.MaskPhone(phone)
		}
		interests := st.Interests
		if interests == nil {
			interests = []string{}
		}
		out = append(out, dto.StudentResponse{
			ID:               st.ID.Hex(),
			FullName:         st.FullName,
			Email:            st.Email,
			Phone:            phone,
			WbjeeRollLastTwo: st.WbjeeRollLastTwo,
			HomeTown:         st.HomeTown,
			Department:       st.Department,
			CurrentYear:      st.CurrentYear,
			Interests:        interests,
			ProfilePhotoURL:  st.ProfilePhotoURL,
			CreatedAt:        st.CreatedAt,
		})
	}
	return out
}

// Suggest implements StudentService
func (s *studentServiceImpl) Suggest(ctx context.Context, q string, isAdmin bool) dto.SuggestionsResponse {
	q = strings.TrimSpace(q)
	if q == "" {
		recent, err := s.studentRepo.Recent(ctx, TrendingLimit)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to load trending students")
			return dto.SuggestionsResponse{Suggestions: []dto.Suggestion{}, Trending: true}
		}
		out := make([]dto.Suggestion, 0, len(recent))
		for _, st := range recent {
			out = append(out, dto.Suggestion{
				ID:         st.ID.Hex(),
				FullName:   st.FullName,
				HomeTown:   st.HomeTown,
				Department: st.Department,
			})
		}
		return dto.SuggestionsResponse{Suggestions: out, Trending: true}
	}

	found, err := s.studentRepo.Search(ctx, q, SuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", q).Msg("Failed to search students")
		return dto.SuggestionsResponse{Suggestions: []dto.Suggestion{}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))
	out := make([]dto.Suggestion, 0, len(found))
	for _, st := range found {
		phone := st.Phone
		if !isAdmin {
			phone = helpers.MaskPhone(phone)
		}
		out = append(out, dto.Suggestion{
			ID:         st.ID.Hex(),
			FullName:   st.FullName,
			HomeTown:   st.HomeTown,
			Department: st.Department,
			Phone:      phone,
			Matches: findMatches(re,
				[2]string{"fullName", st.FullName},
				[2]string{"homeTown", st.HomeTown},
				[2]string{"phone", st.Phone},
			),
		})
	}
	return dto.SuggestionsResponse{Suggestions: out}
}

// findMatches locates the first hit of re in each named value
func findMatches(re *regexp.Regexp, fields ...[2]string) []dto.SuggestionMatch {
	var matches []dto.SuggestionMatch
	for _, f := range fields {
		if loc := re.FindStringIndex(f[1]); loc != nil {
			matches = append(matches, dto.SuggestionMatch{
				Field:  f[0],
				Start:  loc[0],
				Length: loc[1] - loc[0],
			})
		}
	}
	return matches
}

func duplicateError(field models.DuplicateField) error {
	msg, ok := duplicateMessages[field]
	if !ok {
		return apperrors.NewDuplicateError("", "This student is already registered")
	}
	return apperrors.NewDuplicateError(string(field), msg)
}

// parseInterests decodes the JSON array sent with the registration form,
// trimming entries and dropping blanks and repeats
func parseInterests(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, apperrors.NewValidationError("interests", "interests must be a JSON array of strings")
	}
	return normalizeInterests(list), nil
}

func normalizeInterests(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, i := range list {
		i = strings.TrimSpace(i)
		if i == "" {
			continue
		}
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}

func validatePhoto(fh *multipart.FileHeader) error {
	if fh == nil {
		return apperrors.NewValidationError("profilePhoto", "profilePhoto is required")
	}
	if fh.Size > validation.MaxProfilePhotoSize {
		return apperrors.NewValidationError("profilePhoto", "profilePhoto must be at most 5 MB")
	}
	if !allowedPhotoExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		return apperrors.NewValidationError("profilePhoto", "profilePhoto must be a JPG, PNG or WebP image")
	}
	return nil
}
