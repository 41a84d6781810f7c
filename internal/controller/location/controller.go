// Package location provides HTTP handlers for the office locations.
package location

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/controller"
	"github.com/seifeddinerezgui/gethrought/internal/store"
)

// LocationController handles location related endpoints
type LocationController struct {
	Store  store.Store
	Logger *zap.Logger
}

// NewLocationController creates a new instance of LocationController
func NewLocationController(s store.Store, logger *zap.Logger) *LocationController {
	return &LocationController{
		Store:  s,
		Logger: logger,
	}
}

// ListLocations returns every office
// @Summary List international offices
// @Tags Location
// @Produce json
// @Success 200 {array} model.Location
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /international [get]
func (lc *LocationController) ListLocations(c *gin.Context) {
	locations, err := lc.Store.ListLocations(c.Request.Context())
	if err != nil {
		controller.InternalError(c, lc.Logger, "Failed to fetch locations", err)
		return
	}
	c.JSON(http.StatusOK, locations)
}
