package valueobject

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/marcos-nsantos/proximity-api/internal/domain"
)

// GeoPoint is an immutable location on a sphere. Degree and radian forms are
// both computed once at construction. The zero value is not a valid point.
type GeoPoint struct {
	degLat float64
	degLon float64
	radLat float64
	radLon float64
	valid  bool
}

// BoundingOptions configures BoundingCoordinates. A positive finite Radius
// takes precedence over Unit; otherwise the earth radius in Unit is used.
type BoundingOptions struct {
	Radius float64
	Unit   DistanceUnit
}

// EffectiveRadius is the sphere radius BoundingCoordinates will use.
func (o BoundingOptions) EffectiveRadius() float64 {
	if isFinite(o.Radius) && o.Radius > 0 {
		return o.Radius
	}
	return o.Unit.EarthRadius()
}

// NewGeoPoint builds a point from degrees.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	return newGeoPoint(lat, lon, false)
}

// NewGeoPointRadians builds a point from radians.
func NewGeoPointRadians(lat, lon float64) (GeoPoint, error) {
	return newGeoPoint(lat, lon, true)
}

func newGeoPoint(lat, lon float64, inRadians bool) (GeoPoint, error) {
	if !isFinite(lat) {
		return GeoPoint{}, domain.NewInvalidInputError(domain.KindLatitude)
	}
	if !isFinite(lon) {
		return GeoPoint{}, domain.NewInvalidInputError(domain.KindLongitude)
	}

	var p GeoPoint
	if inRadians {
		p.radLat, p.radLon = lat, lon
		p.degLat, p.degLon = lat*Rad2Deg, lon*Rad2Deg
	} else {
		p.degLat, p.degLon = lat, lon
		p.radLat, p.radLon = lat*Deg2Rad, lon*Deg2Rad
	}

	if p.radLat < MinLat || p.radLat > MaxLat {
		return GeoPoint{}, domain.ErrLatitudeOutOfBounds
	}
	if p.radLon < MinLon || p.radLon > MaxLon {
		return GeoPoint{}, domain.ErrLongitudeOutOfBounds
	}

	p.valid = true
	return p, nil
}

func (p GeoPoint) IsValid() bool {
	return p.valid
}

func (p GeoPoint) Latitude() float64 {
	return p.degLat
}

func (p GeoPoint) Longitude() float64 {
	return p.degLon
}

func (p GeoPoint) LatitudeRadians() float64 {
	return p.radLat
}

func (p GeoPoint) LongitudeRadians() float64 {
	return p.radLon
}

// DistanceTo returns the great-circle distance using the spherical law of
// cosines. The cosine is not clamped, so identical or antipodal points can
// yield NaN when rounding pushes it past ±1. See ClampedDistanceTo.
func (p GeoPoint) DistanceTo(other GeoPoint, unit DistanceUnit) (float64, error) {
	if !p.valid || !other.valid {
		return 0, domain.ErrInvalidGeoPoint
	}
	return arcLength(p.centralAngleCos(other), unit.EarthRadius(), false), nil
}

// ClampedDistanceTo is DistanceTo with the cosine clamped to [-1, 1]. It never returns NaN.
func (p GeoPoint) ClampedDistanceTo(other GeoPoint, unit DistanceUnit) (float64, error) {
	if !p.valid || !other.valid {
		return 0, domain.ErrInvalidGeoPoint
	}
	return arcLength(p.centralAngleCos(other), unit.EarthRadius(), true), nil
}

func (p GeoPoint) centralAngleCos(other GeoPoint) float64 {
	return math.Sin(p.radLat)*math.Sin(other.radLat) +
		math.Cos(p.radLat)*math.Cos(other.radLat)*math.Cos(p.radLon-other.radLon)
}

func arcLength(cos, radius float64, clamp bool) float64 {
	if clamp {
		cos = math.Max(-1, math.Min(1, cos))
	}
	return math.Acos(cos) * radius
}

// BoundingCoordinates returns the south-west and north-east corners of a box
// enclosing every point within distance of p. Near a pole the box spans all
// longitudes. When the box crosses the antimeridian, sw's longitude is greater
// than ne's.
func (p GeoPoint) BoundingCoordinates(distance float64, opts BoundingOptions) (sw, ne GeoPoint, err error) {
	if !isFinite(distance) || distance <= 0 {
		return GeoPoint{}, GeoPoint{}, domain.ErrInvalidDistance
	}
	if !p.valid {
		return GeoPoint{}, GeoPoint{}, domain.ErrInvalidGeoPoint
	}

	radDist := distance / opts.EffectiveRadius()

	minLat := p.radLat - radDist
	maxLat := p.radLat + radDist

	var minLon, maxLon float64
	if minLat > MinLat && maxLat < MaxLat {
		deltaLon := math.Asin(math.Sin(radDist) / math.Cos(p.radLat))

		minLon = p.radLon - deltaLon
		if minLon < MinLon {
			minLon += FullCircleRad
		}

		maxLon = p.radLon + deltaLon
		if maxLon > MaxLon {
			maxLon -= FullCircleRad
		}
	} else {
		minLat = math.Max(minLat, MinLat)
		maxLat = math.Min(maxLat, MaxLat)
		minLon = MinLon
		maxLon = MaxLon
	}

	sw, err = NewGeoPointRadians(minLat, minLon)
	if err != nil {
		return GeoPoint{}, GeoPoint{}, fmt.Errorf("south-west corner: %w", err)
	}
	ne, err = NewGeoPointRadians(maxLat, maxLon)
	if err != nil {
		return GeoPoint{}, GeoPoint{}, fmt.Errorf("north-east corner: %w", err)
	}
	return sw, ne, nil
}

func (p GeoPoint) String() string {
	if !p.valid {
		return "(invalid)"
	}
	return fmt.Sprintf("(%f, %f)", p.degLat, p.degLon)
}

type geoPointJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p GeoPoint) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return json.Marshal(geoPointJSON{Latitude: p.degLat, Longitude: p.degLon})
}

func (p *GeoPoint) UnmarshalJSON(buf []byte) error {
	if string(buf) == "null" {
		*p = GeoPoint{}
		return nil
	}

	var raw geoPointJSON
	if err := json.Unmarshal(buf, &raw); err != nil {
		return err
	}

	point, err := NewGeoPoint(raw.Latitude, raw.Longitude)
	if err != nil {
		return err
	}
	*p = point
	return nil
}
