// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/controller"
	"github.com/seifeddinerezgui/gethrought/internal/export"
	"github.com/seifeddinerezgui/gethrought/internal/submission"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

const jobNotFound = "Job not found"

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Submissions *submission.Service
	Logger      *zap.Logger
	// Now stamps export filenames; defaults to time.Now.
	Now func() time.Time
}

// NewApplicationController creates a new instance of ApplicationController with the provided submission service.
func NewApplicationController(s *submission.Service, logger *zap.Logger) *ApplicationController {
	return &ApplicationController{
		Submissions: s,
		Logger:      logger,
		Now:         time.Now,
	}
}

// ApplyResponse is returned when an application is recorded
type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID uint   `json:"applicationId"`
}

// ApplicationHandler handles the creation of a new job application by a visitor.
// @Summary Apply to a job
// @Description The job must exist; inactive jobs still accept applications
// @Tags Application
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param application body submission.ApplicationForm true "Application information"
// @Success 201 {object} ApplyResponse "Successfully applied"
// @Failure 400 {object} utilities.ValidationErrorResponse "Invalid job ID, request body or application data"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (ac *ApplicationController) ApplicationHandler(c *gin.Context) {
	jobID, ok := controller.ParseID(c, "id", "job")
	if !ok {
		return
	}

	// the job must exist before the body is looked at
	if _, err := ac.Submissions.Job(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, submission.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: jobNotFound})
			return
		}
		controller.InternalError(c, ac.Logger, "Failed to submit application", err)
		return
	}

	// Extract application detail from request body
	var form submission.ApplicationForm
	if !controller.BindJSON(c, &form, "Invalid application data") {
		return
	}

	application, err := ac.Submissions.SubmitJobApplication(c.Request.Context(), jobID, form)
	if err != nil {
		if errors.Is(err, submission.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: jobNotFound})
			return
		}
		if controller.ValidationFailed(c, "Invalid application data", err) {
			return
		}
		controller.InternalError(c, ac.Logger, "Failed to submit application", err)
		return
	}

	c.JSON(http.StatusCreated, ApplyResponse{
		Message:       "Application submitted successfully",
		ApplicationID: application.ID,
	})
}

// ListApplications returns every application to one job, newest first.
// @Summary List applications of a job
// @Description Only admin can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Success 200 {array} model.JobApplication
// @Failure 400 {object} utilities.ErrorResponse "Invalid job ID"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as admin"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/applications [get]
func (ac *ApplicationController) ListApplications(c *gin.Context) {
	jobID, ok := controller.ParseID(c, "id", "job")
	if !ok {
		return
	}

	_, applications, err := ac.Submissions.ListJobApplications(c.Request.Context(), jobID)
	if errors.Is(err, submission.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: jobNotFound})
		return
	}
	if err != nil {
		controller.InternalError(c, ac.Logger, "Failed to fetch applications", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ExportApplications downloads the applications of one job as a spreadsheet.
// @Summary Export applications of a job
// @Description Only admin can access this endpoint
// @Tags Application
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Success 200 {file} file "xlsx workbook"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job ID"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as admin"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Failed to export applications"
// @Router /jobs/{id}/applications/export [get]
func (ac *ApplicationController) ExportApplications(c *gin.Context) {
	jobID, ok := controller.ParseID(c, "id", "job")
	if !ok {
		return
	}

	job, applications, err := ac.Submissions.ListJobApplications(c.Request.Context(), jobID)
	if errors.Is(err, submission.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: jobNotFound})
		return
	}
	if err != nil {
		controller.InternalError(c, ac.Logger, "Failed to fetch applications", err)
		return
	}

	data, err := export.Applications(job, applications)
	if err != nil {
		controller.InternalError(c, ac.Logger, "Failed to export applications", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(job, ac.Now())))
	c.Data(http.StatusOK, export.ContentType, data)
}
