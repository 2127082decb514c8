package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrLatitudeOutOfBounds  = errors.New("latitude out of bounds")
	ErrLongitudeOutOfBounds = errors.New("longitude out of bounds")
	ErrInvalidGeoPoint      = errors.New("invalid geopoint")
	ErrInvalidDistance      = errors.New("invalid distance")
	ErrInvalidBoundingBox   = errors.New("invalid bounding box")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrTokenInvalid         = errors.New("token invalid")
)

// InputKind names the kind of value rejected by a conversion or constructor.
type InputKind string

const (
	KindDegree    InputKind = "degree"
	KindRadian    InputKind = "radian"
	KindMile      InputKind = "mile"
	KindKilometer InputKind = "kilometer"
	KindLatitude  InputKind = "latitude"
	KindLongitude InputKind = "longitude"
)

// InvalidInputError reports a NaN or infinite argument. It matches ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	Kind InputKind
}

func NewInvalidInputError(kind InputKind) *InvalidInputError {
	return &InvalidInputError{Kind: kind}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s value", e.Kind)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
