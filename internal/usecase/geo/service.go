package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
)

var ErrUnsupportedConversion = errors.New("unsupported conversion")

// Service exposes the GeoPoint calculations without touching storage.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

type DistanceResult struct {
	// Distance is the unclamped law-of-cosines result and may be NaN for
	// identical or antipodal points. Clamped never is.
	Distance float64
	Clamped  float64
	Unit     valueobject.DistanceUnit
}

func (s *Service) Distance(from, to valueobject.GeoPoint, unit valueobject.DistanceUnit) (*DistanceResult, error) {
	d, err := from.DistanceTo(to, unit)
	if err != nil {
		return nil, err
	}
	clamped, err := from.ClampedDistanceTo(to, unit)
	if err != nil {
		return nil, err
	}
	return &DistanceResult{Distance: d, Clamped: clamped, Unit: unit}, nil
}

type BoundsResult struct {
	SouthWest valueobject.GeoPoint
	NorthEast valueobject.GeoPoint
	Radius    float64
}

func (s *Service) Bounds(center valueobject.GeoPoint, distance float64, opts valueobject.BoundingOptions) (*BoundsResult, error) {
	sw, ne, err := center.BoundingCoordinates(distance, opts)
	if err != nil {
		return nil, err
	}

	return &BoundsResult{SouthWest: sw, NorthEast: ne, Radius: opts.EffectiveRadius()}, nil
}

type conversion func(float64) (float64, error)

var conversions = map[string]conversion{
	"deg:rad": valueobject.DegreesToRadians,
	"rad:deg": valueobject.RadiansToDegrees,
	"mi:km":   valueobject.MilesToKilometers,
	"km:mi":   valueobject.KilometersToMiles,
}

var unitAliases = map[string]string{
	"deg": "deg", "degree": "deg", "degrees": "deg",
	"rad": "rad", "radian": "rad", "radians": "rad",
	"mi": "mi", "mile": "mi", "miles": "mi",
	"km": "km", "kilometer": "km", "kilometers": "km",
}

// Convert converts value from deg to rad, rad to deg, mi to km or km to mi.
func (s *Service) Convert(value float64, from, to string) (float64, error) {
	f, okFrom := unitAliases[strings.ToLower(from)]
	t, okTo := unitAliases[strings.ToLower(to)]
	if !okFrom || !okTo {
		return 0, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}

	convert, ok := conversions[f+":"+t]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}
	return convert(value)
}
