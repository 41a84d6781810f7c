// Package submission validates and records what visitors send: contact requests,
// newsletter subscriptions and job applications.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/store"
)

var ErrJobNotFound = errors.New("job not found")

type ContactForm struct {
	FirstName   string  `json:"firstName" validate:"required,max=100"`
	LastName    string  `json:"lastName" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	Message     string  `json:"message" validate:"required,max=5000"`
	AcceptTerms bool    `json:"acceptTerms" validate:"required"`
}

type NewsletterForm struct {
	Email string `json:"email" validate:"required,email"`
}

type ApplicationForm struct {
	FirstName   string  `json:"firstName" validate:"required,max=100"`
	LastName    string  `json:"lastName" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	ResumeURL   string  `json:"resumeUrl" validate:"required,min=5"`
	CoverLetter *string `json:"coverLetter"`
	LinkedinURL *string `json:"linkedinUrl" validate:"omitnil,url"`
	AcceptTerms bool    `json:"acceptTerms" validate:"required"`
}

type Service struct {
	store     store.Store
	logger    *zap.Logger
	validator *validator.Validate
}

func NewService(s store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: s, logger: logger, validator: newValidator()}
}

// SubmitContact records a contact request. Nothing is written when the form is invalid.
func (s *Service) SubmitContact(ctx context.Context, form ContactForm) (model.Contact, error) {
	trim(&form.FirstName, &form.LastName, &form.Email, &form.Message)
	form.Phone = optional(form.Phone)
	form.Company = optional(form.Company)
	if err := check(s.validator, form); err != nil {
		return model.Contact{}, err
	}

	contact := model.Contact{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       form.Phone,
		Company:     form.Company,
		Message:     form.Message,
		AcceptTerms: form.AcceptTerms,
	}
	if err := s.store.CreateContact(ctx, &contact); err != nil {
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Info("contact request recorded", zap.Uint("contact_id", contact.ID))
	return contact, nil
}

// SubscribeNewsletter subscribes the email once. Subscribing again returns the existing
// subscription with created set to false.
func (s *Service) SubscribeNewsletter(ctx context.Context, form NewsletterForm) (model.Newsletter, bool, error) {
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	if err := check(s.validator, form); err != nil {
		return model.Newsletter{}, false, err
	}

	existing, err := s.store.FindNewsletterByEmail(ctx, form.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.Newsletter{}, false, fmt.Errorf("failed to look up subscription: %w", err)
	}

	newsletter := model.Newsletter{Email: form.Email}
	err = s.store.CreateNewsletter(ctx, &newsletter)
	if errors.Is(err, store.ErrDuplicate) {
		// lost the race against a concurrent subscribe
		existing, err := s.store.FindNewsletterByEmail(ctx, form.Email)
		if err != nil {
			return model.Newsletter{}, false, fmt.Errorf("failed to read concurrent subscription: %w", err)
		}
		return existing, false, nil
	}
	if err != nil {
		return model.Newsletter{}, false, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.logger.Info("newsletter subscription recorded", zap.Uint("newsletter_id", newsletter.ID))
	return newsletter, true, nil
}

// Job resolves jobID, returning ErrJobNotFound when it does not exist.
func (s *Service) Job(ctx context.Context, jobID uint) (model.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if errors.Is(err, store.ErrNotFound) {
		return model.Job{}, ErrJobNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to get job %d: %w", jobID, err)
	}
	return job, nil
}

// SubmitJobApplication records an application to jobID. The job is resolved before the
// form is validated, so a missing job wins over an invalid form. Inactive jobs accept
// applications.
func (s *Service) SubmitJobApplication(ctx context.Context, jobID uint, form ApplicationForm) (model.JobApplication, error) {
	if _, err := s.Job(ctx, jobID); err != nil {
		return model.JobApplication{}, err
	}

	trim(&form.FirstName, &form.LastName, &form.Email, &form.ResumeURL)
	form.Phone = optional(form.Phone)
	form.CoverLetter = optional(form.CoverLetter)
	form.LinkedinURL = optional(form.LinkedinURL)
	if err := check(s.validator, form); err != nil {
		return model.JobApplication{}, err
	}

	application := model.JobApplication{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       form.Phone,
		JobID:       jobID,
		ResumeURL:   form.ResumeURL,
		CoverLetter: form.CoverLetter,
		LinkedinURL: form.LinkedinURL,
		AcceptTerms: form.AcceptTerms,
		Status:      model.ApplicationStatusNew,
	}
	if err := s.store.CreateJobApplication(ctx, &application); err != nil {
		return model.JobApplication{}, fmt.Errorf("failed to create application: %w", err)
	}

	s.logger.Info("job application recorded",
		zap.Uint("application_id", application.ID),
		zap.Uint("job_id", jobID),
	)
	return application, nil
}

// ListJobApplications returns the applications to an existing job, newest first.
func (s *Service) ListJobApplications(ctx context.Context, jobID uint) (model.Job, []model.JobApplication, error) {
	job, err := s.Job(ctx, jobID)
	if err != nil {
		return model.Job{}, nil, err
	}
	applications, err := s.store.ListJobApplications(ctx, jobID)
	if err != nil {
		return model.Job{}, nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return job, applications, nil
}
