package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/logger"
)

// GenericErrorMessage is the only text clients see for server-side failures
const GenericErrorMessage = "Something went wrong. Please try again."

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// Checked in order; the first match wins
var errorMappings = []errorMapping{
	{apperrors.ErrDuplicate, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Already registered"},
	{apperrors.ErrInterestsAlreadyUpdated, http.StatusBadRequest, dto.ErrorCodeAlreadyUpdated, "Interests have already been updated"},
	{apperrors.ErrInvalidOTP, http.StatusBadRequest, dto.ErrorCodeInvalidOTP, "Invalid or expired OTP"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Unauthorized"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
}

// HandleAPIError writes the error response for err. Client errors keep their
// message and field; anything else becomes a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			detail := dto.NewErrorDetail(m.code, apperrors.MessageOf(err, m.message))
			if field := apperrors.FieldOf(err); field != "" {
				detail = detail.WithField(field)
			}
			if m.status < http.StatusInternalServerError {
				detail = detail.WithSeverity(dto.ErrorSeverityWarning)
			}
			c.AbortWithStatusJSON(m.status, dto.NewErrorResponse(detail))
			return
		}
	}

	code := dto.ErrorCodeInternalServer
	if errors.Is(err, apperrors.ErrStorage) {
		code = dto.ErrorCodeDatabaseError
	}
	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.NewErrorDetail(code, GenericErrorMessage)))
}
