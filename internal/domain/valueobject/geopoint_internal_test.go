package valueobject

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArcLength_Overshoot(t *testing.T) {
	above := math.Nextafter(1, 2)
	below := math.Nextafter(-1, -2)

	assert.True(t, math.IsNaN(arcLength(above, EarthRadiusMI, false)))
	assert.True(t, math.IsNaN(arcLength(below, EarthRadiusMI, false)))

	assert.Equal(t, 0.0, arcLength(above, EarthRadiusMI, true))
	assert.InDelta(t, math.Pi*EarthRadiusMI, arcLength(below, EarthRadiusMI, true), 1e-9)
}

func TestBoundingOptions_EffectiveRadius(t *testing.T) {
	assert.Equal(t, EarthRadiusMI, BoundingOptions{}.EffectiveRadius())
	assert.Equal(t, EarthRadiusKM, BoundingOptions{Unit: Kilometers}.EffectiveRadius())
	assert.Equal(t, 1000.0, BoundingOptions{Radius: 1000, Unit: Kilometers}.EffectiveRadius())
	assert.Equal(t, EarthRadiusKM, BoundingOptions{Radius: -1, Unit: Kilometers}.EffectiveRadius())
}
