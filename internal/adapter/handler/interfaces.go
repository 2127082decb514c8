package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/proximity-api/internal/domain/entity"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/pagination"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/geo"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/place"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type PlaceService interface {
	Create(ctx context.Context, input place.CreateInput) (*entity.Place, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)
	List(ctx context.Context, page, perPage int) ([]entity.Place, *pagination.Info, error)
	Update(ctx context.Context, id uuid.UUID, input place.UpdateInput) (*entity.Place, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Nearby(ctx context.Context, input place.NearbyInput) ([]place.NearbyResult, error)
}

type GeoService interface {
	Distance(from, to valueobject.GeoPoint, unit valueobject.DistanceUnit) (*geo.DistanceResult, error)
	Bounds(center valueobject.GeoPoint, distance float64, opts valueobject.BoundingOptions) (*geo.BoundsResult, error)
	Convert(value float64, from, to string) (float64, error)
}
