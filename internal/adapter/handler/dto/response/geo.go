package response

import (
	"math"

	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/geo"
)

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DistanceResponse struct {
	From LocationResponse `json:"from"`
	To   LocationResponse `json:"to"`
	// Distance is null when the law of cosines is undefined for the pair.
	Distance *float64 `json:"distance"`
	Clamped  float64  `json:"clamped_distance"`
	Unit     string   `json:"unit"`
}

type BoundsResponse struct {
	Center              LocationResponse `json:"center"`
	SouthWest           LocationResponse `json:"south_west"`
	NorthEast           LocationResponse `json:"north_east"`
	Radius              float64          `json:"radius"`
	CrossesAntimeridian bool             `json:"crosses_antimeridian"`
}

type ConvertResponse struct {
	Value  float64  `json:"value"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Result *float64 `json:"result"`
}

func LocationFromGeoPoint(p valueobject.GeoPoint) LocationResponse {
	return LocationResponse{
		Latitude:  p.Latitude(),
		Longitude: p.Longitude(),
	}
}

func DistanceFromResult(from, to valueobject.GeoPoint, r *geo.DistanceResult) DistanceResponse {
	return DistanceResponse{
		From:     LocationFromGeoPoint(from),
		To:       LocationFromGeoPoint(to),
		Distance: finiteOrNil(r.Distance),
		Clamped:  r.Clamped,
		Unit:     r.Unit.String(),
	}
}

func BoundsFromResult(center valueobject.GeoPoint, r *geo.BoundsResult) BoundsResponse {
	return BoundsResponse{
		Center:              LocationFromGeoPoint(center),
		SouthWest:           LocationFromGeoPoint(r.SouthWest),
		NorthEast:           LocationFromGeoPoint(r.NorthEast),
		Radius:              r.Radius,
		CrossesAntimeridian: r.SouthWest.Longitude() > r.NorthEast.Longitude(),
	}
}

func ConvertFromResult(value float64, from, to string, result float64) ConvertResponse {
	return ConvertResponse{
		Value:  value,
		From:   from,
		To:     to,
		Result: finiteOrNil(result),
	}
}

// encoding/json rejects NaN and Inf.
func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
