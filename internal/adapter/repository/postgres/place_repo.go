package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/proximity-api/internal/domain"
	"github.com/marcos-nsantos/proximity-api/internal/domain/entity"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/pagination"
)

const placeColumns = `id, name, description, latitude, longitude, created_by, created_at, updated_at`

type PlaceRepo struct {
	pool *pgxpool.Pool
}

func NewPlaceRepo(pool *pgxpool.Pool) *PlaceRepo {
	return &PlaceRepo{pool: pool}
}

func (r *PlaceRepo) Create(ctx context.Context, place *entity.Place) error {
	query := `
		INSERT INTO places (` + placeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		place.ID, place.Name, place.Description,
		place.Location.Latitude(), place.Location.Longitude(),
		place.CreatedBy, place.CreatedAt, place.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting place: %w", err)
	}
	return nil
}

func (r *PlaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	place, err := scanPlace(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("querying place: %w", err)
	}
	return place, nil
}

func (r *PlaceRepo) List(ctx context.Context, params pagination.Params) ([]entity.Place, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM places`).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting places: %w", err)
	}

	query := `
		SELECT ` + placeColumns + `
		FROM places
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	places, err := r.queryPlaces(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, err
	}

	return places, pagination.NewInfo(params.Page, params.PerPage, total), nil
}

func (r *PlaceRepo) Update(ctx context.Context, place *entity.Place) error {
	query := `
		UPDATE places
		SET name = $2, description = $3, latitude = $4, longitude = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		place.ID, place.Name, place.Description,
		place.Location.Latitude(), place.Location.Longitude(),
		place.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating place: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *PlaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *PlaceRepo) FindInBoundingBox(ctx context.Context, bb *valueobject.BoundingBox, limit int) ([]entity.Place, error) {
	if bb == nil || !bb.IsValid() {
		return nil, domain.ErrInvalidBoundingBox
	}

	// A wrapped box covers [MinLng, 180] plus [-180, MaxLng].
	lngCondition := "longitude BETWEEN $3 AND $4"
	if bb.CrossesAntimeridian() {
		lngCondition = "(longitude >= $3 OR longitude <= $4)"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM places
		WHERE latitude BETWEEN $1 AND $2 AND %s
		ORDER BY id
	`, placeColumns, lngCondition)
	args := []any{bb.MinLat, bb.MaxLat, bb.MinLng, bb.MaxLng}

	if limit > 0 {
		query += " LIMIT $5"
		args = append(args, limit)
	}

	return r.queryPlaces(ctx, query, args...)
}

func (r *PlaceRepo) queryPlaces(ctx context.Context, query string, args ...any) ([]entity.Place, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var places []entity.Place
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning place: %w", err)
		}
		places = append(places, *place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating places: %w", err)
	}

	return places, nil
}

func scanPlace(row pgx.Row) (*entity.Place, error) {
	var place entity.Place
	var lat, lng float64

	if err := row.Scan(
		&place.ID, &place.Name, &place.Description,
		&lat, &lng,
		&place.CreatedBy, &place.CreatedAt, &place.UpdatedAt,
	); err != nil {
		return nil, err
	}

	loc, err := valueobject.NewGeoPoint(lat, lng)
	if err != nil {
		return nil, fmt.Errorf("decoding location of place %s: %w", place.ID, err)
	}
	place.Location = loc

	return &place, nil
}
