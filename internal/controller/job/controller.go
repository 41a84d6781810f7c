// Package job provides HTTP handlers for job postings.
package job

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/controller"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// JobController struct holds the store for job-related operations.
type JobController struct {
	Store  store.Store
	Logger *zap.Logger
}

// NewJobController creates a new instance of JobController with the provided store.
func NewJobController(s store.Store, logger *zap.Logger) *JobController {
	return &JobController{
		Store:  s,
		Logger: logger,
	}
}

// ListJobs returns the active job postings
// @Summary List open positions
// @Description Inactive jobs are not listed
// @Tags Job
// @Produce json
// @Success 200 {array} model.Job
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) ListJobs(c *gin.Context) {
	jobs, err := jc.Store.ListJobs(c.Request.Context(), store.JobFilter{ActiveOnly: true})
	if err != nil {
		controller.InternalError(c, jc.Logger, "Failed to fetch jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob returns one job posting, active or not
// @Summary Get job by id
// @Tags Job
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} utilities.ErrorResponse "Invalid job ID"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJob(c *gin.Context) {
	id, ok := controller.ParseID(c, "id", "job")
	if !ok {
		return
	}

	job, err := jc.Store.GetJob(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}
	if err != nil {
		controller.InternalError(c, jc.Logger, "Failed to fetch job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}
