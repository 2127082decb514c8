package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/proximity-api/internal/domain"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/apperror"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"invalid input", domain.NewInvalidInputError(domain.KindLatitude), "INVALID_INPUT", http.StatusBadRequest},
		{"latitude", domain.ErrLatitudeOutOfBounds, "LATITUDE_OUT_OF_BOUNDS", http.StatusBadRequest},
		{"longitude", domain.ErrLongitudeOutOfBounds, "LONGITUDE_OUT_OF_BOUNDS", http.StatusBadRequest},
		{"geopoint", domain.ErrInvalidGeoPoint, "INVALID_GEOPOINT", http.StatusBadRequest},
		{"wrapped distance", fmt.Errorf("%w: too far", domain.ErrInvalidDistance), "INVALID_DISTANCE", http.StatusBadRequest},
		{"not found", fmt.Errorf("loading: %w", domain.ErrPlaceNotFound), "NOT_FOUND", http.StatusNotFound},
		{"token", domain.ErrTokenInvalid, "UNAUTHORIZED", http.StatusUnauthorized},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperror.FromDomain(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.StatusCode)
			assert.Equal(t, tt.status, apperror.StatusCode(appErr))
		})
	}
}

func TestFromDomain_KeepsAppError(t *testing.T) {
	original := apperror.New("CUSTOM", "custom", http.StatusTeapot)
	assert.Same(t, original, apperror.FromDomain(fmt.Errorf("wrapped: %w", original)))
}

func TestAppError_Message(t *testing.T) {
	err := apperror.BadRequest("INVALID_INPUT", domain.NewInvalidInputError(domain.KindDegree))
	assert.Equal(t, "invalid degree value", err.Message)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "invalid degree value: invalid degree value", err.Error())
}
