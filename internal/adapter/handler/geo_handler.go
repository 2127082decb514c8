package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/proximity-api/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/proximity-api/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/httputil"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/geo"
)

type GeoHandler struct {
	geoSvc      GeoService
	defaultUnit valueobject.DistanceUnit
}

func NewGeoHandler(geoSvc GeoService, defaultUnit valueobject.DistanceUnit) *GeoHandler {
	return &GeoHandler{geoSvc: geoSvc, defaultUnit: defaultUnit}
}

func (h *GeoHandler) Distance(c *gin.Context) {
	var req request.DistanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	unit, ok := parseUnit(c, req.Unit, h.defaultUnit)
	if !ok {
		return
	}

	from, err := valueobject.NewGeoPoint(*req.FromLat, *req.FromLng)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}
	to, err := valueobject.NewGeoPoint(*req.ToLat, *req.ToLng)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	result, err := h.geoSvc.Distance(from, to, unit)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.DistanceFromResult(from, to, result))
}

func (h *GeoHandler) Bounds(c *gin.Context) {
	var req request.BoundsRequest
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

	opts := valueobject.BoundingOptions{Unit: unit}
	if req.Radius != nil {
		opts.Radius = *req.Radius
	}

	result, err := h.geoSvc.Bounds(center, *req.Distance, opts)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.BoundsFromResult(center, result))
}

func (h *GeoHandler) Convert(c *gin.Context) {
	var req request.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.geoSvc.Convert(*req.Value, req.From, req.To)
	if err != nil {
		if errors.Is(err, geo.ErrUnsupportedConversion) {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "UNSUPPORTED_CONVERSION", err.Error())
			return
		}
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ConvertFromResult(*req.Value, req.From, req.To, result))
}
