package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/helpers"
	"github.com/gcett/studentdir/internal/pkg/validation"
)

// QuestionOptionCount is the number of choices every question offers
const QuestionOptionCount = 4

// QuestionService manages the skill-test question bank
type QuestionService interface {
	ListQuestions(ctx context.Context, testType string) ([]dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id string, req *dto.QuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// questionServiceImpl implements QuestionService
type questionServiceImpl struct {
	questionRepo repositories.QuestionRepository
	logger       zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo repositories.QuestionRepository, logger zerolog.Logger) QuestionService {
	return &questionServiceImpl{questionRepo: questionRepo, logger: logger}
}

// ListQuestions implements QuestionService. An empty testType lists all.
func (s *questionServiceImpl) ListQuestions(ctx context.Context, testType string) ([]dto.QuestionResponse, error) {
	testType = strings.TrimSpace(testType)
	if testType != "" && !validation.Contains(validation.SubmissionCategories, testType) {
		return nil, apperrors.NewValidationError("testType", "testType must be one of: "+strings.Join(validation.SubmissionCategories, ", "))
	}

	questions, err := s.questionRepo.List(ctx, testType)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list questions")
		return nil, apperrors.NewStorageError(err)
	}
	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, toQuestionResponse(&questions[i]))
	}
	return out, nil
}

// CreateQuestion implements QuestionService
func (s *questionServiceImpl) CreateQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	q, err := questionFromRequest(req)
	if err != nil {
		return nil, err
	}
	now := helpers.NowUTC()
	q.CreatedAt, q.UpdatedAt = now, now

	if err := s.questionRepo.Create(ctx, q); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create question")
		return nil, apperrors.NewStorageError(err)
	}
	resp := toQuestionResponse(q)
	return &resp, nil
}

// UpdateQuestion implements QuestionService
func (s *questionServiceImpl) UpdateQuestion(ctx context.Context, id string, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError(apperrors.ErrQuestionNotFound, "question not found")
	}
	q, err := questionFromRequest(req)
	if err != nil {
		return nil, err
	}
	q.ID = oid
	q.UpdatedAt = helpers.NowUTC()

	stored, err := s.questionRepo.Update(ctx, q)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuestionNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to update question")
		return nil, apperrors.NewStorageError(err)
	}
	resp := toQuestionResponse(stored)
	return &resp, nil
}

// DeleteQuestion implements QuestionService
func (s *questionServiceImpl) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrQuestionNotFound) {
			return err
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete question")
		return apperrors.NewStorageError(err)
	}
	return nil
}

func questionFromRequest(req *dto.QuestionRequest) (*models.SkillTestQuestion, error) {
	if req == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid request body")
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, apperrors.NewValidationError("question", "question is required")
	}
	if len(req.Options) != QuestionOptionCount {
		return nil, apperrors.NewValidationError("options", "options must have exactly 4 items")
	}
	options := make([]string, 0, QuestionOptionCount)
	for _, o := range req.Options {
		o = strings.TrimSpace(o)
		if o == "" {
			return nil, apperrors.NewValidationError("options", "options must not be empty")
		}
		options = append(options, o)
	}
	if req.CorrectAnswer == nil || *req.CorrectAnswer < 0 || *req.CorrectAnswer >= QuestionOptionCount {
		return nil, apperrors.NewValidationError("correctAnswer", "correctAnswer must be between 0 and 3")
	}
	if !validation.Contains(validation.QuestionDifficulties, req.Difficulty) {
		return nil, apperrors.NewValidationError("difficulty", "difficulty must be one of: "+strings.Join(validation.QuestionDifficulties, ", "))
	}
	if !validation.Contains(validation.SubmissionCategories, req.TestType) {
		return nil, apperrors.NewValidationError("testType", "testType must be one of: "+strings.Join(validation.SubmissionCategories, ", "))
	}

	return &models.SkillTestQuestion{
		Question:      strings.TrimSpace(req.Question),
		Options:       options,
		CorrectAnswer: *req.CorrectAnswer,
		Difficulty:    req.Difficulty,
		TestType:      req.TestType,
	}, nil
}

func toQuestionResponse(q *models.SkillTestQuestion) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:            q.ID.Hex(),
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    q.Difficulty,
		TestType:      q.TestType,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
