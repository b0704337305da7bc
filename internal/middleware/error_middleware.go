package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// apiError maps a sentinel to its HTTP status, error code and fallback message
type apiError struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// order matters: the first matching sentinel wins
var apiErrors = []apiError{
	{apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"},
	{apperrors.ErrDepartmentNotFound, http.StatusBadRequest, dto.ErrorCodeResourceNotFound, "Department not found"},
	{apperrors.ErrProgramNotFound, http.StatusBadRequest, dto.ErrorCodeResourceNotFound, "Program not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrInvalidStatusTransition, http.StatusBadRequest, dto.ErrorCodeInvalidTransition, "Invalid status transition"},
	{apperrors.ErrStudentFieldsInconsistent, http.StatusBadRequest, dto.ErrorCodeInvalidTransition, "Student fields are inconsistent with its status"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Conflict"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	for _, e := range apiErrors {
		if !errors.Is(err, e.target) {
			continue
		}

		message := apperrors.MessageOf(err)
		if message == "" {
			message = e.message
		}
		detail := dto.NewErrorDetail(e.code, message)
		if e.code == dto.ErrorCodeInvalidTransition {
			detail = detail.WithDetails(err.Error())
		}

		logger.Debug().Err(err).Int("status", e.status).Str("path", c.FullPath()).Msg("Request rejected")
		c.AbortWithStatusJSON(e.status, dto.NewErrorResponse(detail))
		return
	}

	logger.Error().Err(err).Str("path", c.FullPath()).Str("request_id", RequestIDFrom(c)).Msg("Unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
}
