// Package contact provides HTTP handlers for the contact form and the newsletter signup.
package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/controller"
	"github.com/seifeddinerezgui/gethrought/internal/submission"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// ContactController handles visitor submissions that are not job applications
type ContactController struct {
	Submissions *submission.Service
	Logger      *zap.Logger
}

// NewContactController creates a new instance of ContactController
func NewContactController(s *submission.Service, logger *zap.Logger) *ContactController {
	return &ContactController{
		Submissions: s,
		Logger:      logger,
	}
}

// ContactResponse is returned when a contact request is recorded
type ContactResponse struct {
	Message   string `json:"message"`
	ContactID uint   `json:"contactId"`
}

// SubmitContact records a contact request
// @Summary Submit the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param form body submission.ContactForm true "Contact form"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} utilities.ValidationErrorResponse "Invalid form data"
// @Failure 413 {object} utilities.ErrorResponse "Request body too large"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /contact [post]
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var form submission.ContactForm
	if !controller.BindJSON(c, &form, "Invalid form data") {
		return
	}

	contact, err := cc.Submissions.SubmitContact(c.Request.Context(), form)
	if err != nil {
		if controller.ValidationFailed(c, "Invalid form data", err) {
			return
		}
		controller.InternalError(c, cc.Logger, "Failed to submit contact form", err)
		return
	}

	c.JSON(http.StatusCreated, ContactResponse{
		Message:   "Form submitted successfully",
		ContactID: contact.ID,
	})
}

// Subscribe adds an email to the newsletter. Subscribing twice is not an error.
// @Summary Subscribe to the newsletter
// @Tags Contact
// @Accept json
// @Produce json
// @Param form body submission.NewsletterForm true "Email to subscribe"
// @Success 201 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ValidationErrorResponse "Invalid email address"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /newsletter [post]
func (cc *ContactController) Subscribe(c *gin.Context) {
	var form submission.NewsletterForm
	if !controller.BindJSON(c, &form, "Invalid email address") {
		return
	}

	if _, _, err := cc.Submissions.SubscribeNewsletter(c.Request.Context(), form); err != nil {
		if controller.ValidationFailed(c, "Invalid email address", err) {
			return
		}
		controller.InternalError(c, cc.Logger, "Failed to subscribe to newsletter", err)
		return
	}

	c.JSON(http.StatusCreated, utilities.MessageResponse{
		Message: "Subscribed to newsletter successfully",
	})
}
