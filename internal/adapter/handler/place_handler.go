package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/proximity-api/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/proximity-api/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/httputil"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/place"
)

type PlaceHandler struct {
	placeSvc    PlaceService
	defaultUnit valueobject.DistanceUnit
}

func NewPlaceHandler(placeSvc PlaceService, defaultUnit valueobject.DistanceUnit) *PlaceHandler {
	return &PlaceHandler{placeSvc: placeSvc, defaultUnit: defaultUnit}
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var req request.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	loc, err := valueobject.NewGeoPoint(*req.Latitude, *req.Longitude)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	p, err := h.placeSvc.Create(c.Request.Context(), place.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    loc,
		CreatedBy:   httputil.GetClientID(c),
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.PlaceFromEntity(p))
}

func (h *PlaceHandler) List(c *gin.Context) {
	var req request.ListPlacesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	places, pageInfo, err := h.placeSvc.List(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlacesListResponse{
		Places:     response.PlacesFromEntities(places),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *PlaceHandler) Get(c *gin.Context) {
	placeID, ok := parsePlaceID(c)
	if !ok {
		return
	}

	p, err := h.placeSvc.GetByID(c.Request.Context(), placeID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlaceFromEntity(p))
}

func (h *PlaceHandler) Update(c *gin.Context) {
	placeID, ok := parsePlaceID(c)
	if !ok {
		return
	}

	var req request.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	input := place.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "latitude and longitude must be set together")
		return
	}
	if req.Latitude != nil {
		loc, err := valueobject.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			httputil.HandleError(c, err)
			return
		}
		input.Location = &loc
	}

	p, err := h.placeSvc.Update(c.Request.Context(), placeID, input)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlaceFromEntity(p))
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	placeID, ok := parsePlaceID(c)
	if !ok {
		return
	}

	if err := h.placeSvc.Delete(c.Request.Context(), placeID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

func (h *PlaceHandler) Nearby(c *gin.Context) {
	var req request.NearbyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	unit, ok := parseUnit(c, req.Unit, h.defaultUnit)
	if !ok {
		return
	}

	center, err := valueobject.NewGeoPoint(*req.Latitude, *req.Longitude)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	input := place.NearbyInput{
		Center:   center,
		Distance: *req.Distance,
		Unit:     unit,
		Limit:    req.Limit,
	}

	results, err := h.placeSvc.Nearby(c.Request.Context(), input)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.NearbyFromResults(input, results))
}

func parsePlaceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid place id")
		return uuid.Nil, false
	}
	return id, true
}
