// Package store is the persistence layer for every record kind the site serves or collects.
//
// Store has two implementations with the same contract: GormStore on PostgreSQL and
// MemoryStore for local runs and tests. Both assign monotonically increasing IDs that
// are never reused, and neither updates nor deletes rows.
package store

import (
	"context"
	"errors"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

var (
	// ErrNotFound is returned by Get* and Find* lookups that match no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned by Create* when a unique column already holds the value.
	ErrDuplicate = errors.New("duplicate record")
)

// JobFilter narrows ListJobs
type JobFilter struct {
	ActiveOnly bool
}

// NewsFilter narrows and windows ListNews. A zero Limit returns every matching row from Offset.
type NewsFilter struct {
	Category string
	Offset   int
	Limit    int
}

// Store is the persistence contract shared by GormStore and MemoryStore.
type Store interface {
	ListSolutions(ctx context.Context) ([]model.Solution, error)
	GetSolution(ctx context.Context, id uint) (model.Solution, error)
	CreateSolution(ctx context.Context, solution *model.Solution) error

	ListLocations(ctx context.Context) ([]model.Location, error)
	GetLocation(ctx context.Context, id uint) (model.Location, error)
	CreateLocation(ctx context.Context, location *model.Location) error

	ListJobs(ctx context.Context, filter JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, id uint) (model.Job, error)
	CreateJob(ctx context.Context, job *model.Job) error

	// ListNews returns the requested window, sorted by publish date descending with
	// ties in insertion order, and the size of the filtered set before windowing.
	ListNews(ctx context.Context, filter NewsFilter) ([]model.News, int64, error)
	GetNews(ctx context.Context, id uint) (model.News, error)
	CreateNews(ctx context.Context, news *model.News) error

	CreateContact(ctx context.Context, contact *model.Contact) error
	ListContacts(ctx context.Context) ([]model.Contact, error)

	FindNewsletterByEmail(ctx context.Context, email string) (model.Newsletter, error)
	CreateNewsletter(ctx context.Context, newsletter *model.Newsletter) error
	ListNewsletters(ctx context.Context) ([]model.Newsletter, error)

	CreateJobApplication(ctx context.Context, application *model.JobApplication) error
	// ListJobApplications returns the applications of one job, newest first.
	ListJobApplications(ctx context.Context, jobID uint) ([]model.JobApplication, error)

	GetUser(ctx context.Context, id uint) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
}
