package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/pkg/httputil"
)

// parseUnit falls back to def when raw is empty. It writes the error response itself.
func parseUnit(c *gin.Context, raw string, def valueobject.DistanceUnit) (valueobject.DistanceUnit, bool) {
	if raw == "" {
		return def, true
	}
	unit, err := valueobject.ParseDistanceUnit(raw)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_UNIT", err.Error())
		return def, false
	}
	return unit, true
}
