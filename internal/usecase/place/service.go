package place

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/proximity-api/internal/adapter/repository"
	"github.com/marcos-nsantos/proximity-api/internal/domain"
	"github.com/marcos-nsantos/proximity-api/internal/domain/entity"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/observability"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/pagination"
)

const (
	DefaultNearbyLimit = 20
	MaxNearbyLimit     = 100
)

type Options struct {
	DefaultNearbyLimit int
	MaxNearbyLimit     int
	// MaxSearchDistanceKM caps nearby queries. Zero disables the cap.
	MaxSearchDistanceKM float64
}

type Service struct {
	placeRepo repository.PlaceRepository
	opts      Options
}

func NewService(placeRepo repository.PlaceRepository, opts Options) *Service {
	if opts.DefaultNearbyLimit < 1 {
		opts.DefaultNearbyLimit = DefaultNearbyLimit
	}
	if opts.MaxNearbyLimit < 1 {
		opts.MaxNearbyLimit = MaxNearbyLimit
	}
	return &Service{
		placeRepo: placeRepo,
		opts:      opts,
	}
}

type CreateInput struct {
	Name        string
	Description string
	Location    valueobject.GeoPoint
	CreatedBy   string
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Place, error) {
	if !input.Location.IsValid() {
		return nil, domain.ErrInvalidGeoPoint
	}

	place := entity.NewPlace(input.Name, input.Description, input.Location, input.CreatedBy)

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("creating place: %w", err)
	}

	return place, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	return s.placeRepo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page, perPage int) ([]entity.Place, *pagination.Info, error) {
	places, info, err := s.placeRepo.List(ctx, pagination.NewParams(page, perPage))
	if err != nil {
		return nil, nil, fmt.Errorf("listing places: %w", err)
	}
	return places, info, nil
}

type UpdateInput struct {
	Name        *string
	Description *string
	Location    *valueobject.GeoPoint
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*entity.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := place.Name
	description := place.Description
	location := place.Location

	if input.Name != nil {
		name = *input.Name
	}
	if input.Description != nil {
		description = *input.Description
	}
	if input.Location != nil {
		if !input.Location.IsValid() {
			return nil, domain.ErrInvalidGeoPoint
		}
		location = *input.Location
	}

	place.Update(name, description, location)

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, fmt.Errorf("updating place: %w", err)
	}

	return place, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.placeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}
	return nil
}

type NearbyInput struct {
	Center   valueobject.GeoPoint
	Distance float64
	Unit     valueobject.DistanceUnit
	Limit    int
}

type NearbyResult struct {
	Place    entity.Place
	Distance float64
	Unit     valueobject.DistanceUnit
}

// Nearby returns places within Distance of Center, closest first. The
// bounding box narrows the candidates in the store and the great-circle
// distance decides membership, since box corners lie outside the circle.
func (s *Service) Nearby(ctx context.Context, input NearbyInput) ([]NearbyResult, error) {
	if err := s.checkDistance(input.Distance, input.Unit); err != nil {
		return nil, err
	}

	bb, err := valueobject.NewBoundingBoxAround(input.Center, input.Distance, valueobject.BoundingOptions{Unit: input.Unit})
	if err != nil {
		return nil, err
	}

	candidates, err := s.placeRepo.FindInBoundingBox(ctx, bb, 0)
	if err != nil {
		return nil, fmt.Errorf("finding candidates: %w", err)
	}
	observability.NearbyCandidates.Observe(float64(len(candidates)))

	results := make([]NearbyResult, 0, len(candidates))
	for _, candidate := range candidates {
		d, err := input.Center.ClampedDistanceTo(candidate.Location, input.Unit)
		if err != nil {
			return nil, fmt.Errorf("measuring distance to place %s: %w", candidate.ID, err)
		}
		if d <= input.Distance {
			results = append(results, NearbyResult{Place: candidate, Distance: d, Unit: input.Unit})
		}
	}

	slices.SortFunc(results, func(a, b NearbyResult) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Place.Name, b.Place.Name)
	})

	limit := pagination.ClampLimit(input.Limit, s.opts.DefaultNearbyLimit, s.opts.MaxNearbyLimit)
	if len(results) > limit {
		results = results[:limit]
	}
	observability.NearbyResults.Observe(float64(len(results)))

	return results, nil
}

func (s *Service) checkDistance(distance float64, unit valueobject.DistanceUnit) error {
	if distance <= 0 {
		return domain.ErrInvalidDistance
	}
	if s.opts.MaxSearchDistanceKM <= 0 {
		return nil
	}

	km := distance
	if unit == valueobject.Miles {
		var err error
		if km, err = valueobject.MilesToKilometers(distance); err != nil {
			return domain.ErrInvalidDistance
		}
	}
	if km > s.opts.MaxSearchDistanceKM {
		return fmt.Errorf("%w: exceeds maximum of %g km", domain.ErrInvalidDistance, s.opts.MaxSearchDistanceKM)
	}
	return nil
}
