// Package solution provides HTTP handlers for the firm's service offerings.
package solution

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/controller"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// SolutionController handles solution related endpoints
type SolutionController struct {
	Store  store.Store
	Logger *zap.Logger
}

// NewSolutionController creates a new instance of SolutionController
func NewSolutionController(s store.Store, logger *zap.Logger) *SolutionController {
	return &SolutionController{
		Store:  s,
		Logger: logger,
	}
}

// ListSolutions returns every solution by display order.
// @Summary List solutions
// @Tags Solution
// @Produce json
// @Success 200 {array} model.Solution
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /solutions [get]
func (sc *SolutionController) ListSolutions(c *gin.Context) {
	solutions, err := sc.Store.ListSolutions(c.Request.Context())
	if err != nil {
		controller.InternalError(c, sc.Logger, "Failed to fetch solutions", err)
		return
	}
	c.JSON(http.StatusOK, solutions)
}

// GetSolution returns one solution.
// @Summary Get solution by id
// @Tags Solution
// @Produce json
// @Param id path int true "Solution ID"
// @Success 200 {object} model.Solution
// @Failure 400 {object} utilities.ErrorResponse "Invalid solution ID"
// @Failure 404 {object} utilities.ErrorResponse "Solution not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /solutions/{id} [get]
func (sc *SolutionController) GetSolution(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "solution")
	if !ok {
		return
	}

	solution, err := sc.Store.GetSolution(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Solution not found"})
		return
	}
	if err != nil {
		controller.InternalError(c, sc.Logger, "Failed to fetch solution", err)
		return
	}
	c.JSON(http.StatusOK, solution)
}
