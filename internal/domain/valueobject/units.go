package valueobject

import (
	"fmt"
	"math"
	"strings"

	"github.com/marcos-nsantos/proximity-api/internal/domain"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
	Mi2Km   = 1.6093439999999999
	Km2Mi   = 0.621371192237334

	// Mean earth radius.
	EarthRadiusKM = 6371.01
	EarthRadiusMI = 3958.762079

	MaxLat        = math.Pi / 2
	MinLat        = -MaxLat
	MaxLon        = math.Pi
	MinLon        = -MaxLon
	FullCircleRad = 2 * math.Pi
)

// DistanceUnit selects miles or kilometers. The zero value is Miles.
type DistanceUnit int

const (
	Miles DistanceUnit = iota
	Kilometers
)

func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mi", "mile", "miles":
		return Miles, nil
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return Kilometers, nil
	default:
		return Miles, fmt.Errorf("unknown distance unit %q", s)
	}
}

func (u DistanceUnit) EarthRadius() float64 {
	if u == Kilometers {
		return EarthRadiusKM
	}
	return EarthRadiusMI
}

func (u DistanceUnit) String() string {
	if u == Kilometers {
		return "km"
	}
	return "mi"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func DegreesToRadians(value float64) (float64, error) {
	if !isFinite(value) {
		return 0, domain.NewInvalidInputError(domain.KindDegree)
	}
	return value * Deg2Rad, nil
}

func RadiansToDegrees(value float64) (float64, error) {
	if !isFinite(value) {
		return 0, domain.NewInvalidInputError(domain.KindRadian)
	}
	return value * Rad2Deg, nil
}

func MilesToKilometers(value float64) (float64, error) {
	if !isFinite(value) {
		return 0, domain.NewInvalidInputError(domain.KindMile)
	}
	return value * Mi2Km, nil
}

func KilometersToMiles(value float64) (float64, error) {
	if !isFinite(value) {
		return 0, domain.NewInvalidInputError(domain.KindKilometer)
	}
	return value * Km2Mi, nil
}
