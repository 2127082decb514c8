package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Geo(t *testing.T) {
	app := setupTestApp(t)

	getJSON := func(t *testing.T, path string, wantStatus int) map[string]any {
		t.Helper()
		resp, err := app.get(path, nil)
		require.NoError(t, err)
		require.Equal(t, wantStatus, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		return body
	}

	t.Run("distance in miles", func(t *testing.T) {
		body := getJSON(t, "/geo/distance?from_lat=40.689604&from_lng=-74.04455&to_lat=38.890298&to_lng=-77.035238", http.StatusOK)

		assert.InDelta(t, 201.63714020616294, body["distance"], 1e-9)
		assert.Equal(t, "mi", body["unit"])
	})

	t.Run("distance in kilometers", func(t *testing.T) {
		body := getJSON(t, "/geo/distance?from_lat=40.689604&from_lng=-74.04455&to_lat=38.890298&to_lng=-77.035238&unit=km", http.StatusOK)

		assert.InDelta(t, 324.503521805324, body["distance"], 1e-9)
	})

	t.Run("distance between identical points is never negative", func(t *testing.T) {
		body := getJSON(t, "/geo/distance?from_lat=40.689604&from_lng=-74.04455&to_lat=40.689604&to_lng=-74.04455", http.StatusOK)

		assert.Equal(t, float64(0), body["clamped_distance"])
		if body["distance"] != nil {
			assert.InDelta(t, 0, body["distance"], 1e-6)
		}
	})

	t.Run("bounds in miles", func(t *testing.T) {
		body := getJSON(t, "/geo/bounds?lat=40.689604&lng=-74.04455&distance=20", http.StatusOK)

		sw := body["south_west"].(map[string]any)
		ne := body["north_east"].(map[string]any)
		assert.InDelta(t, 40.40014088820039, sw["latitude"], 1e-9)
		assert.InDelta(t, -74.42630141845927, sw["longitude"], 1e-9)
		assert.InDelta(t, 40.97906711179962, ne["latitude"], 1e-9)
		assert.InDelta(t, -73.66279858154073, ne["longitude"], 1e-9)
	})

	t.Run("bounds across the antimeridian", func(t *testing.T) {
		body := getJSON(t, "/geo/bounds?lat=0&lng=179.9&distance=20&unit=km", http.StatusOK)

		assert.Equal(t, true, body["crosses_antimeridian"])
		assert.InDelta(t, 179.72013596113305, body["south_west"].(map[string]any)["longitude"], 1e-9)
		assert.InDelta(t, -179.92013596113304, body["north_east"].(map[string]any)["longitude"], 1e-9)
	})

	t.Run("bounds reject non-positive distance", func(t *testing.T) {
		body := getJSON(t, "/geo/bounds?lat=0&lng=0&distance=0", http.StatusBadRequest)
		assert.Equal(t, "INVALID_DISTANCE", body["code"])
	})

	t.Run("convert degrees to radians", func(t *testing.T) {
		body := getJSON(t, "/geo/convert?value=180&from=deg&to=rad", http.StatusOK)
		assert.InDelta(t, 3.141592653589793, body["result"], 1e-15)
	})

	t.Run("convert rejects NaN", func(t *testing.T) {
		body := getJSON(t, "/geo/convert?value=NaN&from=km&to=mi", http.StatusBadRequest)
		assert.Equal(t, "INVALID_INPUT", body["code"])
		assert.Equal(t, "invalid kilometer value", body["error"])
	})
}
