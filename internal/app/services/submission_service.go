package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/email"
	"github.com/gcett/studentdir/internal/pkg/filestorage"
	"github.com/gcett/studentdir/internal/pkg/helpers"
	"github.com/gcett/studentdir/internal/pkg/validation"
)

// Storage folders for submission uploads
const (
	PortfolioPath = "portfolios"
	RedesignPath  = "redesigns"
)

// Categories whose challenge upload is required
const (
	CategoryAIML = "AI/ML"
	CategoryUIUX = "UI/UX"
)

// SubmissionService accepts and lists skill-test submissions
type SubmissionService interface {
	// Submit stores a submission. A file whose upload fails is kept by name
	// only; the submission itself still succeeds.
	Submit(ctx context.Context, req *dto.SubmitSkillTestRequest) (*dto.SubmissionResponse, error)
	ListSubmissions(ctx context.Context, page, pageSize int) (*dto.SubmissionListResponse, error)
}

// SubmissionConfig holds submission workflow settings
type SubmissionConfig struct {
	// OperatorEmail receives a copy of every submission; empty disables it
	OperatorEmail string
}

// submissionServiceImpl implements SubmissionService
type submissionServiceImpl struct {
	submissionRepo repositories.SubmissionRepository
	entrantRepo    repositories.EntrantRepository
	storage        filestorage.FileStorage
	mailer         email.Mailer
	notifier       Notifier
	config         SubmissionConfig
	now            func() time.Time
	logger         zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	entrantRepo repositories.EntrantRepository,
	storage filestorage.FileStorage,
	mailer email.Mailer,
	notifier Notifier,
	config SubmissionConfig,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		entrantRepo:    entrantRepo,
		storage:        storage,
		mailer:         mailer,
		notifier:       notifier,
		config:         config,
		now:            helpers.NowUTC,
		logger:         logger,
	}
}

// Submit implements SubmissionService
func (s *submissionServiceImpl) Submit(ctx context.Context, req *dto.SubmitSkillTestRequest) (*dto.SubmissionResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	switch req.Category {
	case CategoryAIML:
		if req.PortfolioFile == nil {
			return nil, apperrors.NewValidationError("portfolioFile", "portfolioFile is required for AI/ML submissions")
		}
	case CategoryUIUX:
		if req.RedesignFile == nil {
			return nil, apperrors.NewValidationError("redesignFile", "redesignFile is required for UI/UX submissions")
		}
	}

	now := s.now()
	sub := &models.Submission{
		ID:                   uuid.New(),
		Name:                 strings.TrimSpace(req.Name),
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:                strings.TrimSpace(req.Phone),
		LinkedinID:           helpers.NullIfEmpty(req.LinkedinID),
		PortfolioDescription: helpers.NullIfEmpty(req.PortfolioDescription),
		Category:             req.Category,
		Status:               models.SubmissionStatusSubmitted,
		CreatedAt:            now,
	}
	sub.PortfolioFile = s.upload(ctx, req.PortfolioFile, PortfolioPath, now)
	sub.RedesignFile = s.upload(ctx, req.RedesignFile, RedesignPath, now)

	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		s.logger.Error().Err(err).Str("email", sub.Email).Msg("Failed to store submission")
		s.discard(sub.PortfolioFile, sub.RedesignFile)
		return nil, apperrors.NewStorageError(err)
	}
	s.logger.Info().Str("id", sub.ID.String()).Str("category", sub.Category).Msg("Submission stored")

	if err := s.entrantRepo.Upsert(ctx, sub.Email, sub.Name, sub.Category, now); err != nil {
		s.logger.Warn().Err(err).Str("email", sub.Email).Msg("Failed to record skill-test entrant")
	}

	s.notifyOperator(*sub)

	resp := toSubmissionResponse(sub)
	return &resp, nil
}

// upload stores fh under a timestamped name. A failed upload keeps the
// original file name without a URL.
func (s *submissionServiceImpl) upload(ctx context.Context, fh *multipart.FileHeader, folder string, at time.Time) *models.FileRef {
	if fh == nil {
		return nil
	}
	ref := &models.FileRef{Name: fh.Filename}
	url, err := s.storage.SaveFileAs(ctx, fh, folder, filestorage.TimestampedName(at, fh.Filename))
	if err != nil {
		s.logger.Error().Err(err).Str("file", fh.Filename).Str("folder", folder).Msg("Submission file upload failed")
		return ref
	}
	ref.URL = url
	return ref
}

func (s *submissionServiceImpl) discard(refs ...*models.FileRef) {
	for _, ref := range refs {
		if ref == nil || ref.URL == "" {
			continue
		}
		if err := s.storage.DeleteFile(context.Background(), ref.URL); err != nil {
			s.logger.Warn().Err(err).Str("url", ref.URL).Msg("Failed to remove orphaned submission file")
		}
	}
}

func (s *submissionServiceImpl) notifyOperator(sub models.Submission) {
	if s.config.OperatorEmail == "" {
		return
	}

	var files []email.FileLink
	if sub.PortfolioFile != nil {
		files = append(files, email.FileLink{Label: "Portfolio", Name: sub.PortfolioFile.Name, URL: sub.PortfolioFile.URL})
	}
	if sub.RedesignFile != nil {
		files = append(files, email.FileLink{Label: "Redesign", Name: sub.RedesignFile.Name, URL: sub.RedesignFile.URL})
	}
	subject, body := email.SubmissionEmail(email.SubmissionData{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		LinkedinID:  helpers.StringValue(sub.LinkedinID),
		Description: helpers.StringValue(sub.PortfolioDescription),
		Category:    sub.Category,
		Files:       files,
		SubmittedAt: sub.CreatedAt,
	})

	s.notifier.Go("submission-email", func(ctx context.Context) error {
		return s.mailer.Send(ctx, email.Message{
			To:      []string{s.config.OperatorEmail},
			Subject: subject,
			HTML:    body,
		})
	})
}

// ListSubmissions implements SubmissionService
func (s *submissionServiceImpl) ListSubmissions(ctx context.Context, page, pageSize int) (*dto.SubmissionListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	subs, total, err := s.submissionRepo.List(ctx, offset, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list submissions")
		return nil, apperrors.NewStorageError(err)
	}

	out := make([]dto.SubmissionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubmissionResponse(&subs[i]))
	}
	return &dto.SubmissionListResponse{
		Submissions: out,
		Pagination:  helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

func toSubmissionResponse(s *models.Submission) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID:                   s.ID.String(),
		Name:                 s.Name,
		Email:                s.Email,
		Phone:                s.Phone,
		LinkedinID:           helpers.StringValue(s.LinkedinID),
		PortfolioDescription: helpers.StringValue(s.PortfolioDescription),
		Category:             s.Category,
		PortfolioFile:        toFileResponse(s.PortfolioFile),
		RedesignFile:         toFileResponse(s.RedesignFile),
		Status:               s.Status,
		CreatedAt:            s.CreatedAt,
	}
}

func toFileResponse(ref *models.FileRef) *dto.FileResponse {
	if ref == nil {
		return nil
	}
	return &dto.FileResponse{Name: ref.Name, URL: ref.URL}
}
