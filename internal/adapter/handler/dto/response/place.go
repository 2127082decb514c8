package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/proximity-api/internal/domain/entity"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/pagination"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/place"
)

type PlaceResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    LocationResponse `json:"location"`
	CreatedBy   string           `json:"created_by"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type PlacesListResponse struct {
	Places     []PlaceResponse    `json:"places"`
	Pagination PaginationResponse `json:"pagination"`
}

type NearbyPlaceResponse struct {
	PlaceResponse
	Distance float64 `json:"distance"`
}

type NearbyResponse struct {
	Center   LocationResponse      `json:"center"`
	Distance float64               `json:"distance"`
	Unit     string                `json:"unit"`
	Places   []NearbyPlaceResponse `json:"places"`
}

func PlaceFromEntity(p *entity.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Location:    LocationFromGeoPoint(p.Location),
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func PlacesFromEntities(places []entity.Place) []PlaceResponse {
	result := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		result = append(result, PlaceFromEntity(&p))
	}
	return result
}

func NearbyFromResults(input place.NearbyInput, results []place.NearbyResult) NearbyResponse {
	resp := NearbyResponse{
		Center:   LocationFromGeoPoint(input.Center),
		Distance: input.Distance,
		Unit:     input.Unit.String(),
		Places:   make([]NearbyPlaceResponse, 0, len(results)),
	}
	for _, r := range results {
		resp.Places = append(resp.Places, NearbyPlaceResponse{
			PlaceResponse: PlaceFromEntity(&r.Place),
			Distance:      r.Distance,
		})
	}
	return resp
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
