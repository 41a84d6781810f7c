// Package server wires the store, the services and the HTTP handlers into a gin engine.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/seifeddinerezgui/gethrought/internal/auth"
	"github.com/seifeddinerezgui/gethrought/internal/controller/application"
	"github.com/seifeddinerezgui/gethrought/internal/controller/contact"
	"github.com/seifeddinerezgui/gethrought/internal/controller/job"
	"github.com/seifeddinerezgui/gethrought/internal/controller/location"
	"github.com/seifeddinerezgui/gethrought/internal/controller/news"
	"github.com/seifeddinerezgui/gethrought/internal/controller/solution"
	"github.com/seifeddinerezgui/gethrought/internal/middleware"
	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/submission"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()

	tokens := auth.NewTokens(s.Config.JWT.Secret, s.Config.JWT.Issuer, s.Config.JWT.TTL)
	submissions := submission.NewService(s.Store, s.Logger)

	lAuth := auth.NewLocalAuthHandler(s.Store, tokens, s.Logger)
	solutionController := solution.NewSolutionController(s.Store, s.Logger)
	locationController := location.NewLocationController(s.Store, s.Logger)
	jobController := job.NewJobController(s.Store, s.Logger)
	newsController := news.NewNewsController(s.Listing, s.Store, s.Logger)
	contactController := contact.NewContactController(submissions, s.Logger)
	applicationController := application.NewApplicationController(submissions, s.Logger)

	r.Use(
		middleware.Recovery(s.Logger),
		middleware.RequestLogger(s.Logger),
		middleware.SafeHeader(),
		cors.New(cors.Config{
			AllowOrigins:  s.Config.AllowOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Accept", "Authorization", "Content-Type"},
			ExposeHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
		}),
		middleware.SizeLimit(s.Config.BodyLimit),
	)

	// one budget per client shared by every write endpoint
	limiter := middleware.RateLimiterMiddleware(s.Config.RateLimit)

	r.GET("/health", s.healthHandler)
	api := r.Group("/api")
	{
		api.POST("/auth/login", limiter, lAuth.LocalLoginHandler)

		api.GET("/solutions", solutionController.ListSolutions)
		api.GET("/solutions/:id", solutionController.GetSolution)
		api.GET("/international", locationController.ListLocations)

		api.GET("/news", newsController.ListNews)
		api.GET("/news/:id", newsController.GetNews)

		api.POST("/contact", limiter, contactController.SubmitContact)
		api.POST("/newsletter", limiter, contactController.Subscribe)

		jobRoute := api.Group("/jobs")
		{
			jobRoute.GET("", jobController.ListJobs)
			jobRoute.GET("/:id", jobController.GetJob)
			jobRoute.POST("/:id/apply", limiter, applicationController.ApplicationHandler)

			needAdmin := jobRoute.Group("/:id/applications")
			{
				needAdmin.Use(middleware.RequireAuth(tokens, s.Store, s.Logger), middleware.CheckRole(model.RoleAdmin))
				needAdmin.GET("", applicationController.ListApplications)
				needAdmin.GET("/export", applicationController.ExportApplications)
			}
		}
	}

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.Health(c.Request.Context()))
}
