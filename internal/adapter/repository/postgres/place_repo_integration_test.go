package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/proximity-api/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/proximity-api/internal/domain"
	"github.com/marcos-nsantos/proximity-api/internal/domain/entity"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/pagination"
)

func placeNames(places []entity.Place) []string {
	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}
	return names
}

func TestIntegrationPlaceRepo_CRUD(t *testing.T) {
	db := SetupTestDB(t)
	repo := postgres.NewPlaceRepo(db.Pool)
	ctx := context.Background()

	t.Run("creates and reads a place", func(t *testing.T) {
		db.Truncate(t)
		place := newTestPlace(t, "Statue of Liberty", 40.689604, -74.04455)

		require.NoError(t, repo.Create(ctx, place))

		found, err := repo.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, place.Name, found.Name)
		assert.Equal(t, 40.689604, found.Location.Latitude())
		assert.Equal(t, -74.04455, found.Location.Longitude())
		assert.Equal(t, place.Location.LatitudeRadians(), found.Location.LatitudeRadians())
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		db.Truncate(t)

		found, err := repo.GetByID(ctx, uuid.New())
		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})

	t.Run("updates a place", func(t *testing.T) {
		db.Truncate(t)
		place := newTestPlace(t, "Old", 10, 10)
		require.NoError(t, repo.Create(ctx, place))

		moved, err := valueobject.NewGeoPoint(-33.8688, 151.2093)
		require.NoError(t, err)
		place.Update("Sydney", "Opera House", moved)
		require.NoError(t, repo.Update(ctx, place))

		found, err := repo.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sydney", found.Name)
		assert.Equal(t, -33.8688, found.Location.Latitude())
	})

	t.Run("update of unknown place is not found", func(t *testing.T) {
		db.Truncate(t)
		err := repo.Update(ctx, newTestPlace(t, "Ghost", 0, 0))
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})

	t.Run("deletes a place", func(t *testing.T) {
		db.Truncate(t)
		place := newTestPlace(t, "Temp", 1, 1)
		require.NoError(t, repo.Create(ctx, place))

		require.NoError(t, repo.Delete(ctx, place.ID))
		assert.ErrorIs(t, repo.Delete(ctx, place.ID), domain.ErrPlaceNotFound)
	})

	t.Run("lists with pagination", func(t *testing.T) {
		db.Truncate(t)
		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, repo.Create(ctx, newTestPlace(t, name, 0, 0)))
		}

		places, info, err := repo.List(ctx, pagination.NewParams(1, 2))
		require.NoError(t, err)
		assert.Len(t, places, 2)
		assert.Equal(t, 3, info.TotalItems)
		assert.True(t, info.HasNext)
	})
}

func TestIntegrationPlaceRepo_FindInBoundingBox(t *testing.T) {
	db := SetupTestDB(t)
	repo := postgres.NewPlaceRepo(db.Pool)
	ctx := context.Background()

	t.Run("returns places inside a regular box", func(t *testing.T) {
		db.Truncate(t)
		for _, p := range []*entity.Place{
			newTestPlace(t, "Battery Park", 40.703277, -74.017028),
			newTestPlace(t, "Times Square", 40.758896, -73.985130),
			newTestPlace(t, "Washington", 38.890298, -77.035238),
		} {
			require.NoError(t, repo.Create(ctx, p))
		}

		center, err := valueobject.NewGeoPoint(40.689604, -74.04455)
		require.NoError(t, err)
		bb, err := valueobject.NewBoundingBoxAround(center, 20, valueobject.BoundingOptions{})
		require.NoError(t, err)

		places, err := repo.FindInBoundingBox(ctx, bb, 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Battery Park", "Times Square"}, placeNames(places))

		limited, err := repo.FindInBoundingBox(ctx, bb, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("returns places on both sides of the antimeridian", func(t *testing.T) {
		db.Truncate(t)
		for _, p := range []*entity.Place{
			newTestPlace(t, "East", 0, 179.9),
			newTestPlace(t, "West", 0, -179.9),
			newTestPlace(t, "Greenwich", 0, 0),
		} {
			require.NoError(t, repo.Create(ctx, p))
		}

		center, err := valueobject.NewGeoPoint(0, 180)
		require.NoError(t, err)
		bb, err := valueobject.NewBoundingBoxAround(center, 50, valueobject.BoundingOptions{Unit: valueobject.Kilometers})
		require.NoError(t, err)
		require.True(t, bb.CrossesAntimeridian())

		places, err := repo.FindInBoundingBox(ctx, bb, 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"East", "West"}, placeNames(places))
	})

	t.Run("rejects an invalid box", func(t *testing.T) {
		_, err := repo.FindInBoundingBox(ctx, valueobject.NewBoundingBox(10, -10, 0, 0), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidBoundingBox)
	})
}
