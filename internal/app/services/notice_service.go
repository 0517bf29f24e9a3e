package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/email"
	"github.com/gcett/studentdir/internal/pkg/helpers"
	"github.com/gcett/studentdir/internal/pkg/validation"
)

// NoticeService defines the notice board operations
type NoticeService interface {
	ListNotices(ctx context.Context) ([]dto.NoticeResponse, error)
	// CreateNotice publishes a notice and mails it to the whole audience in
	// the background. Delivery never affects the result.
	CreateNotice(ctx context.Context, req *dto.NoticeRequest) (*dto.NoticeResponse, error)
	UpdateNotice(ctx context.Context, id string, req *dto.NoticeRequest) (*dto.NoticeResponse, error)
	DeleteNotice(ctx context.Context, id string) error
}

// noticeServiceImpl implements NoticeService
type noticeServiceImpl struct {
	noticeRepo repositories.NoticeRepository
	audience   *Audience
	mailer     email.Mailer
	notifier   Notifier
	logger     zerolog.Logger
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(
	noticeRepo repositories.NoticeRepository,
	audience *Audience,
	mailer email.Mailer,
	notifier Notifier,
	logger zerolog.Logger,
) NoticeService {
	return &noticeServiceImpl{
		noticeRepo: noticeRepo,
		audience:   audience,
		mailer:     mailer,
		notifier:   notifier,
		logger:     logger,
	}
}

// ListNotices implements NoticeService
func (s *noticeServiceImpl) ListNotices(ctx context.Context) ([]dto.NoticeResponse, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list notices")
		return nil, apperrors.NewStorageError(err)
	}
	out := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		out = append(out, toNoticeResponse(&notices[i]))
	}
	return out, nil
}

// CreateNotice implements NoticeService
func (s *noticeServiceImpl) CreateNotice(ctx context.Context, req *dto.NoticeRequest) (*dto.NoticeResponse, error) {
	if err := validateNotice(req); err != nil {
		return nil, err
	}

	now := helpers.NowUTC()
	notice := &models.Notice{
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		Type:      req.Type,
		Priority:  req.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create notice")
		return nil, apperrors.NewStorageError(err)
	}
	s.logger.Info().Str("id", notice.ID.Hex()).Str("type", notice.Type).Msg("Notice published")

	s.announce(*notice)

	resp := toNoticeResponse(notice)
	return &resp, nil
}

// announce BCCs the notice to every known address
func (s *noticeServiceImpl) announce(notice models.Notice) {
	s.notifier.Go("notice-fanout", func(ctx context.Context) error {
		recipients := s.audience.Emails(ctx)
		if len(recipients) == 0 {
			s.logger.Info().Str("id", notice.ID.Hex()).Msg("No recipients for notice")
			return nil
		}

		subject, body := email.NoticeEmail(email.NoticeData{
			Title:    notice.Title,
			Content:  notice.Content,
			Type:     notice.Type,
			Priority: notice.Priority,
			PostedAt: notice.CreatedAt,
		})
		if err := s.mailer.Send(ctx, email.Message{Bcc: recipients, Subject: subject, HTML: body}); err != nil {
			return err
		}
		s.logger.Info().Str("id", notice.ID.Hex()).Int("recipients", len(recipients)).Msg("Notice emailed")
		return nil
	})
}

// UpdateNotice implements NoticeService
func (s *noticeServiceImpl) UpdateNotice(ctx context.Context, id string, req *dto.NoticeRequest) (*dto.NoticeResponse, error) {
	if err := validateNotice(req); err != nil {
		return nil, err
	}

	notice, err := s.noticeRepo.Update(ctx, id, models.NoticeUpdate{
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		Type:     req.Type,
		Priority: req.Priority,
	}, helpers.NowUTC())
	if err != nil {
		return nil, s.mutationError(err, id)
	}
	resp := toNoticeResponse(notice)
	return &resp, nil
}

// DeleteNotice implements NoticeService
func (s *noticeServiceImpl) DeleteNotice(ctx context.Context, id string) error {
	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		return s.mutationError(err, id)
	}
	s.logger.Info().Str("id", id).Msg("Notice deleted")
	return nil
}

func (s *noticeServiceImpl) mutationError(err error, id string) error {
	if errors.Is(err, apperrors.ErrNoticeNotFound) {
		return err
	}
	s.logger.Error().Err(err).Str("id", id).Msg("Notice update failed")
	return apperrors.NewStorageError(err)
}

func validateNotice(req *dto.NoticeRequest) error {
	if req == nil {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidationError("content", "content is required")
	}
	if !validation.Contains(validation.NoticeTypes, req.Type) {
		return apperrors.NewValidationError("type", "type must be one of: "+strings.Join(validation.NoticeTypes, ", "))
	}
	if !validation.Contains(validation.NoticePriorities, req.Priority) {
		return apperrors.NewValidationError("priority", "priority must be one of: "+strings.Join(validation.NoticePriorities, ", "))
	}
	return nil
}

func toNoticeResponse(n *models.Notice) dto.NoticeResponse {
	return dto.NoticeResponse{
		ID:        n.ID.Hex(),
		Title:     n.Title,
		Content:   n.Content,
		Type:      n.Type,
		Priority:  n.Priority,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
