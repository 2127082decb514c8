package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/proximity-api/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(code string, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

var badRequestCodes = []struct {
	target error
	code   string
}{
	{domain.ErrInvalidInput, "INVALID_INPUT"},
	{domain.ErrLatitudeOutOfBounds, "LATITUDE_OUT_OF_BOUNDS"},
	{domain.ErrLongitudeOutOfBounds, "LONGITUDE_OUT_OF_BOUNDS"},
	{domain.ErrInvalidGeoPoint, "INVALID_GEOPOINT"},
	{domain.ErrInvalidDistance, "INVALID_DISTANCE"},
	{domain.ErrInvalidBoundingBox, "INVALID_BBOX"},
}

// FromDomain maps domain errors to their HTTP representation. Unknown errors become Internal.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrPlaceNotFound):
		return NotFound("place")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrTokenInvalid):
		return Unauthorized("invalid or expired token")
	}

	for _, c := range badRequestCodes {
		if errors.Is(err, c.target) {
			return BadRequest(c.code, err)
		}
	}

	return Internal(err)
}

func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
