package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/email"
	"github.com/gcett/studentdir/internal/pkg/otp"
)

// InterestService implements the OTP-gated one-time interest update
type InterestService interface {
	VerifyEmail(ctx context.Context, email string) (*dto.VerifyEmailResponse, error)
	SendOTP(ctx context.Context, email string) (*dto.SendOTPResponse, error)
	VerifyUpdate(ctx context.Context, email, code string, interests []string) (*dto.UpdateInterestsResponse, error)
}

// interestServiceImpl implements InterestService
type interestServiceImpl struct {
	studentRepo repositories.StudentRepository
	codes       otp.Store
	mailer      email.Mailer
	notifier    Notifier
	logger      zerolog.Logger
}

// NewInterestService creates a new InterestService
func NewInterestService(
	studentRepo repositories.StudentRepository,
	codes otp.Store,
	mailer email.Mailer,
	notifier Notifier,
	logger zerolog.Logger,
) InterestService {
	return &interestServiceImpl{
		studentRepo: studentRepo,
		codes:       codes,
		mailer:      mailer,
		notifier:    notifier,
		logger:      logger,
	}
}

// VerifyEmail implements InterestService
func (s *interestServiceImpl) VerifyEmail(ctx context.Context, address string) (*dto.VerifyEmailResponse, error) {
	student, err := s.studentRepo.FindByEmail(ctx, normalizeEmail(address))
	if err != nil {
		return nil, s.lookupError(err)
	}
	interests := student.Interests
	if interests == nil {
		interests = []string{}
	}
	return &dto.VerifyEmailResponse{
		Interests:  interests,
		HasUpdated: student.InterestsUpdated,
	}, nil
}

// SendOTP implements InterestService. The code is mailed in the background;
// a delivery failure is only logged.
func (s *interestServiceImpl) SendOTP(ctx context.Context, address string) (*dto.SendOTPResponse, error) {
	address = normalizeEmail(address)
	student, err := s.studentRepo.FindByEmail(ctx, address)
	if err != nil {
		return nil, s.lookupError(err)
	}

	code, err := s.codes.Issue(address)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate OTP")
		return nil, apperrors.NewCustomError(err, "failed to generate verification code")
	}

	subject, body := email.OTPEmail(student.FullName, code, s.codes.TTL())
	s.notifier.Go("otp-email", func(ctx context.Context) error {
		return s.mailer.Send(ctx, email.Message{
			To:      []string{address},
			Subject: subject,
			HTML:    body,
		})
	})

	interests := student.Interests
	if interests == nil {
		interests = []string{}
	}
	return &dto.SendOTPResponse{
		Message:          "OTP sent to your email",
		CurrentInterests: interests,
	}, nil
}

// VerifyUpdate implements InterestService. The code is consumed before the
// conditional write, so each code authorises at most one attempt.
func (s *interestServiceImpl) VerifyUpdate(ctx context.Context, address, code string, interests []string) (*dto.UpdateInterestsResponse, error) {
	address = normalizeEmail(address)
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewValidationError("otp", "otp is required")
	}
	if !s.codes.Verify(address, code) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidOTP, "Invalid or expired OTP").WithField("otp")
	}

	interests = normalizeInterests(interests)
	if err := s.studentRepo.SetInterestsOnce(ctx, address, interests); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInterestsAlreadyUpdated):
			return nil, apperrors.NewCustomError(apperrors.ErrInterestsAlreadyUpdated,
				"Interests have already been updated for this email")
		case errors.Is(err, apperrors.ErrStudentNotFound):
			return nil, err
		default:
			s.logger.Error().Err(err).Msg("Failed to update interests")
			return nil, apperrors.NewStorageError(err)
		}
	}

	s.logger.Info().Str("email", address).Int("interests", len(interests)).Msg("Interests updated")
	return &dto.UpdateInterestsResponse{
		Message:   "Interests updated successfully",
		Interests: interests,
	}, nil
}

func (s *interestServiceImpl) lookupError(err error) error {
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		return err
	}
	s.logger.Error().Err(err).Msg("Failed to look up student")
	return apperrors.NewStorageError(err)
}

func normalizeEmail(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
