package submission

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/testutil"
)

func newService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	return NewService(s, nil), s
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	names := []string{}
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func validContact() ContactForm {
	return ContactForm{
		FirstName:   "Jean",
		LastName:    "Dupont",
		Email:       "jean.dupont@example.com",
		Message:     "Je souhaite un rendez-vous.",
		AcceptTerms: true,
	}
}

func TestSubmitContact_Success(t *testing.T) {
	svc, s := newService(t)
	form := validContact()
	form.Company = testutil.StringPtr("  ACME  ")
	form.Phone = testutil.StringPtr("   ")

	contact, err := svc.SubmitContact(context.Background(), form)
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())
	assert.Equal(t, "ACME", *contact.Company)
	assert.Nil(t, contact.Phone)

	contacts, err := s.ListContacts(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestSubmitContact_Invalid(t *testing.T) {
	svc, s := newService(t)

	form := validContact()
	form.Message = "   "
	form.AcceptTerms = false
	form.Email = "not-an-email"

	_, err := svc.SubmitContact(context.Background(), form)
	assert.ElementsMatch(t, []string{"message", "acceptTerms", "email"}, fieldNames(t, err))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range verr.Fields {
		if f.Field == "acceptTerms" {
			assert.Equal(t, "must be accepted", f.Message)
		}
	}

	contacts, err := s.ListContacts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestSubscribeNewsletter_Idempotent(t *testing.T) {
	svc, s := newService(t)
	ctx := context.Background()

	first, created, err := svc.SubscribeNewsletter(ctx, NewsletterForm{Email: "Marie@Example.com "})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "marie@example.com", first.Email)

	second, created, err := svc.SubscribeNewsletter(ctx, NewsletterForm{Email: "marie@example.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	all, err := s.ListNewsletters(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubscribeNewsletter_Concurrent(t *testing.T) {
	svc, s := newService(t)
	ctx := context.Background()

	const n = 16
	ids := make([]uint, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sub, _, err := svc.SubscribeNewsletter(ctx, NewsletterForm{Email: "race@example.com"})
			assert.NoError(t, err)
			ids[i] = sub.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	all, err := s.ListNewsletters(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubscribeNewsletter_InvalidEmail(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.SubscribeNewsletter(context.Background(), NewsletterForm{Email: "nope"})
	assert.Equal(t, []string{"email"}, fieldNames(t, err))

	_, _, err = svc.SubscribeNewsletter(context.Background(), NewsletterForm{})
	assert.Equal(t, []string{"email"}, fieldNames(t, err))
}

func createJob(t *testing.T, s store.Store, active bool) model.Job {
	t.Helper()
	job := model.Job{Title: "Auditeur Junior H/F", Location: "Paris", ContractType: "CDI", Description: "d", IsActive: active}
	require.NoError(t, s.CreateJob(context.Background(), &job))
	return job
}

func validApplication() ApplicationForm {
	return ApplicationForm{
		FirstName:   "Amina",
		LastName:    "Benali",
		Email:       "amina@example.com",
		ResumeURL:   "https://cv.example.com/amina.pdf",
		LinkedinURL: testutil.StringPtr("https://www.linkedin.com/in/amina"),
		AcceptTerms: true,
	}
}

func TestSubmitJobApplication_Success(t *testing.T) {
	svc, s := newService(t)
	job := createJob(t, s, true)

	app, err := svc.SubmitJobApplication(context.Background(), job.ID, validApplication())
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusNew, app.Status)
	assert.Equal(t, job.ID, app.JobID)

	_, apps, err := svc.ListJobApplications(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)
}

func TestSubmitJobApplication_InactiveJob(t *testing.T) {
	svc, s := newService(t)
	job := createJob(t, s, false)

	_, err := svc.SubmitJobApplication(context.Background(), job.ID, validApplication())
	assert.NoError(t, err)
}

func TestSubmitJobApplication_MissingJob(t *testing.T) {
	svc, s := newService(t)

	// an invalid form still reports the missing job
	_, err := svc.SubmitJobApplication(context.Background(), 999, ApplicationForm{})
	assert.ErrorIs(t, err, ErrJobNotFound)

	apps, err := s.ListJobApplications(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, apps)

	_, _, err = svc.ListJobApplications(context.Background(), 999)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestSubmitJobApplication_Invalid(t *testing.T) {
	svc, s := newService(t)
	job := createJob(t, s, true)

	form := validApplication()
	form.ResumeURL = "cv"
	form.LinkedinURL = testutil.StringPtr("linkedin")
	form.AcceptTerms = false
	form.FirstName = ""

	_, err := svc.SubmitJobApplication(context.Background(), job.ID, form)
	assert.ElementsMatch(t, []string{"firstName", "resumeUrl", "linkedinUrl", "acceptTerms"}, fieldNames(t, err))

	// blank optional fields are dropped, not validated
	form = validApplication()
	form.LinkedinURL = testutil.StringPtr(" ")
	app, err := svc.SubmitJobApplication(context.Background(), job.ID, form)
	require.NoError(t, err)
	assert.Nil(t, app.LinkedinURL)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "email", Message: "is required"},
		{Field: "message", Message: "is required"},
	}}
	assert.Equal(t, "validation failed: email is required; message is required", err.Error())
}
