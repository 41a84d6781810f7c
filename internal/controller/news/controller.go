// Package news provides HTTP handlers for the paginated news listing.
package news

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/controller"
	"github.com/seifeddinerezgui/gethrought/internal/listing"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

const invalidPagination = "Invalid pagination parameters"

// NewsController handles news related endpoints
type NewsController struct {
	Listing *listing.Service
	Store   store.Store
	Logger  *zap.Logger
}

// NewNewsController creates a new instance of NewsController
func NewNewsController(l *listing.Service, s store.Store, logger *zap.Logger) *NewsController {
	return &NewsController{
		Listing: l,
		Store:   s,
		Logger:  logger,
	}
}

// positiveQuery reads key as a positive integer, fallback when absent or empty.
func positiveQuery(c *gin.Context, key string, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}

// ListNews returns one page of news
// @Summary List news with pagination
// @Description Sorted by publish date, newest first. Category must match exactly.
// @Tags News
// @Produce json
// @Param page query int false "Page number, from 1" default(1)
// @Param limit query int false "Page size, at most 100" default(6)
// @Param category query string false "Exact category"
// @Success 200 {object} listing.Page
// @Failure 400 {object} utilities.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /news [get]
func (nc *NewsController) ListNews(c *gin.Context) {
	page, okPage := positiveQuery(c, "page", listing.DefaultPage)
	limit, okLimit := positiveQuery(c, "limit", listing.DefaultLimit)
	if !okPage || !okLimit {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: invalidPagination})
		return
	}

	result, err := nc.Listing.Paginate(c.Request.Context(), listing.Query{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
	})
	if errors.Is(err, listing.ErrInvalidPagination) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: invalidPagination})
		return
	}
	if err != nil {
		controller.InternalError(c, nc.Logger, "Failed to fetch news", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetNews returns one article
// @Summary Get news article by id
// @Tags News
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} model.News
// @Failure 400 {object} utilities.ErrorResponse "Invalid news ID"
// @Failure 404 {object} utilities.ErrorResponse "News article not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /news/{id} [get]
func (nc *NewsController) GetNews(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "news")
	if !ok {
		return
	}

	item, err := nc.Store.GetNews(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "News article not found"})
		return
	}
	if err != nil {
		controller.InternalError(c, nc.Logger, "Failed to fetch news article", err)
		return
	}
	c.JSON(http.StatusOK, item)
}
