package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/proximity-api/internal/domain/entity"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type PlaceRepository interface {
	Create(ctx context.Context, place *entity.Place) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)
	List(ctx context.Context, params pagination.Params) ([]entity.Place, *pagination.Info, error)
	Update(ctx context.Context, place *entity.Place) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindInBoundingBox returns at most limit places inside bb. A limit <= 0 means no limit.
	FindInBoundingBox(ctx context.Context, bb *valueobject.BoundingBox, limit int) ([]entity.Place, error)
}
