// Package seed loads the sample catalogue and bootstraps the back-office account.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/store"
)

// Result counts the rows inserted by Run per kind.
type Result struct {
	Solutions int
	Locations int
	Jobs      int
	News      int
}

// Empty reports whether Run inserted nothing.
func (r Result) Empty() bool {
	return r.Solutions+r.Locations+r.Jobs+r.News == 0
}

// Run inserts the sample data of every kind that has no rows yet.
// Kinds that already hold data are left alone, so Run can be called on every start.
func Run(ctx context.Context, s store.Store, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var res Result

	solutions, err := s.ListSolutions(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list solutions: %w", err)
	}
	if len(solutions) == 0 {
		for _, sol := range Solutions() {
			if err := s.CreateSolution(ctx, &sol); err != nil {
				return res, fmt.Errorf("failed to create solution %q: %w", sol.Title, err)
			}
			res.Solutions++
		}
	}

	locations, err := s.ListLocations(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list locations: %w", err)
	}
	if len(locations) == 0 {
		for _, loc := range Locations() {
			if err := s.CreateLocation(ctx, &loc); err != nil {
				return res, fmt.Errorf("failed to create location %q: %w", loc.Title, err)
			}
			res.Locations++
		}
	}

	// inactive jobs count too, ListJobs without a filter
	jobs, err := s.ListJobs(ctx, store.JobFilter{})
	if err != nil {
		return res, fmt.Errorf("failed to list jobs: %w", err)
	}
	if len(jobs) == 0 {
		for _, job := range Jobs() {
			if err := s.CreateJob(ctx, &job); err != nil {
				return res, fmt.Errorf("failed to create job %q: %w", job.Title, err)
			}
			res.Jobs++
		}
	}

	_, total, err := s.ListNews(ctx, store.NewsFilter{Limit: 1})
	if err != nil {
		return res, fmt.Errorf("failed to count news: %w", err)
	}
	if total == 0 {
		for _, n := range News() {
			if err := s.CreateNews(ctx, &n); err != nil {
				return res, fmt.Errorf("failed to create news %q: %w", n.Title, err)
			}
			res.News++
		}
	}

	logger.Info("sample data loaded",
		zap.Int("solutions", res.Solutions),
		zap.Int("locations", res.Locations),
		zap.Int("jobs", res.Jobs),
		zap.Int("news", res.News),
	)
	return res, nil
}

// EnsureAdmin creates the admin account named username unless it already exists.
// An empty username is a no-op. It reports whether a row was inserted.
func EnsureAdmin(ctx context.Context, s store.Store, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}
	if password == "" {
		return false, errors.New("admin password must not be empty")
	}

	_, err := s.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := model.User{
		Username: username,
		Password: string(hashed),
		Role:     model.RoleAdmin,
	}
	if err := s.CreateUser(ctx, &admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
