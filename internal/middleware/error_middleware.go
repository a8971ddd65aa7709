package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-tools-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Internal failures
// are logged and answered with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed with internal error")
	}

	// Legacy clients expect 500 for every handler failure
	if c.GetBool(LegacyStatusCodesKey) && status != http.StatusUnauthorized {
		status = http.StatusInternalServerError
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	ce, _ := apperrors.AsCustomError(err)

	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, "Invalid Id")
		if ce != nil && ce.Details != nil {
			detail = detail.WithDetails(ce.Details)
		}
		return http.StatusBadRequest, detail

	case errors.Is(err, apperrors.ErrValidationFailed):
		message := "Validation failed"
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		if ce != nil {
			detail.Message = ce.Message
			detail = detail.WithField(ce.Field)
			if ce.Code != "" {
				detail.Code = dto.ErrorCode(ce.Code)
			}
		}
		return http.StatusBadRequest, detail.WithSeverity(dto.ErrorSeverityWarning)

	case errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Malformed request body")
		if ce != nil {
			detail = detail.WithDetails(ce.Message)
		}
		return http.StatusBadRequest, detail.WithSeverity(dto.ErrorSeverityWarning)

	case errors.Is(err, apperrors.ErrResourceNotFound):
		message := "Resource not found"
		if ce != nil {
			message = ce.Message
		}
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeTimeout, "Request timed out").
			WithSeverity(dto.ErrorSeverityCritical)

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}
