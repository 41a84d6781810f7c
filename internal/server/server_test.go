package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/client"
	"github.com/seifeddinerezgui/gethrought/internal/config"
	"github.com/seifeddinerezgui/gethrought/internal/submission"
	"github.com/seifeddinerezgui/gethrought/internal/testutil"
)

const (
	adminUsername = "admin"
	adminPassword = "correct-horse"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func testConfig() config.Config {
	return config.Config{
		Port:        8080,
		StoreDriver: config.StoreDriverMemory,
		JWT: config.JWTConfig{
			Secret: []byte("test-secret"),
			Issuer: "gethrought-test",
			TTL:    time.Hour,
		},
		NewsCacheTTL:  time.Minute,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
		AllowOrigins:  []string{"*"},
		RateLimit:     1000,
		BodyLimit:     1 << 20,
		SeedOnStart:   true,
	}
}

func newServer(t *testing.T, cfg config.Config) (*MyServer, *gin.Engine) {
	t.Helper()
	s, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	r, ok := s.RegisterRoutes().(*gin.Engine)
	require.True(t, ok)
	return s, r
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"username": adminUsername,
		"password": adminPassword,
	}, "", r, "/api/auth/login", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, ok := resp["accessToken"].(string)
	require.True(t, ok)
	return token
}

func TestHealth_Memory(t *testing.T) {
	_, r := newServer(t, testConfig())

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/health", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["status"])
	assert.Equal(t, "memory", resp["store"])
	assert.Equal(t, "disabled", resp["cache"])
}

func TestPublicRoutes(t *testing.T) {
	_, r := newServer(t, testConfig())

	for path, size := range map[string]int{
		"/api/solutions":     4,
		"/api/international": 8,
		"/api/jobs":          5,
	} {
		rec, resp := testutil.MakeJSONListRequest("", r, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Len(t, resp, size, path)
	}

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/news?limit=4", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(6), resp["total"])
	assert.Equal(t, float64(2), resp["totalPages"])

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/api/jobs/1", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestApplicationsRequireAdmin(t *testing.T) {
	_, r := newServer(t, testConfig())

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"firstName":   "Amina",
		"lastName":    "Benali",
		"email":       "amina@example.com",
		"resumeUrl":   "https://cv.example/amina.pdf",
		"acceptTerms": true,
	}, "", r, "/api/jobs/2/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), resp["applicationId"])

	rec, _ = testutil.MakeJSONListRequest("", r, "/api/jobs/2/applications")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = testutil.MakeJSONListRequest("not-a-token", r, "/api/jobs/2/applications")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, r)

	rec, list := testutil.MakeJSONListRequest(token, r, "/api/jobs/2/applications")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, list, 1)
	assert.Equal(t, "amina@example.com", list[0]["email"])
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/jobs/2/applications/export", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment;"))

	rec, _ = testutil.MakeJSONListRequest(token, r, "/api/jobs/77/applications")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, r := newServer(t, testConfig())

	rec, _ := testutil.MakeJSONRequest(gin.H{"username": adminUsername, "password": "nope"}, "", r, "/api/auth/login", http.MethodPost)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWriteRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 1
	_, r := newServer(t, cfg)

	body := gin.H{"email": "rate@example.com"}
	rec, _ := testutil.MakeJSONRequest(body, "", r, "/api/newsletter", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = testutil.MakeJSONRequest(body, "", r, "/api/newsletter", http.MethodPost)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// reads are not limited
	for i := 0; i < 3; i++ {
		rec, _ = testutil.MakeJSONListRequest("", r, "/api/jobs")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.BodyLimit = 256
	_, r := newServer(t, cfg)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"firstName":   "Jeanne",
		"lastName":    "Dupont",
		"email":       "j@example.com",
		"message":     strings.Repeat("x", 1024),
		"acceptTerms": true,
	}, "", r, "/api/contact", http.MethodPost)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewsCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Redis.Addr = mr.Addr()
	s, r := newServer(t, cfg)
	require.NotNil(t, s.Cache)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/health", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["cache"])

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/api/news", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, mr.Exists("news:/api/news?limit=6&page=1"))

	mr.Close()
	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/api/news?page=2&limit=3", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, "listing falls through when redis is gone")
	assert.Equal(t, float64(2), resp["page"])

	_, resp = testutil.MakeJSONRequest(nil, "", r, "/health", http.MethodGet)
	assert.Equal(t, "down", resp["cache"])
}

func TestRedisUnreachableAtStart(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig()
	cfg.Redis.Addr = addr
	s, _ := newServer(t, cfg)

	assert.Nil(t, s.Cache)
}

func TestNew_AdminWithoutPassword(t *testing.T) {
	cfg := testConfig()
	cfg.AdminPassword = ""

	_, err := New(context.Background(), cfg, zap.NewNop())

	assert.Error(t, err)
}

func TestNew_NoSeed(t *testing.T) {
	cfg := testConfig()
	cfg.SeedOnStart = false
	_, r := newServer(t, cfg)

	rec, resp := testutil.MakeJSONListRequest("", r, "/api/solutions")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp)
}

func TestClientAgainstServer(t *testing.T) {
	_, r := newServer(t, testConfig())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)
	ctx := context.Background()

	page, err := c.ListNews(ctx, client.NewsParams{Category: "Comptabilité & Normes IFRS", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.TotalPages)

	_, err = c.ListNews(ctx, client.NewsParams{Page: 3, Limit: 1, Category: "Comptabilité & Normes IFRS"})
	require.NoError(t, err)

	jobs, err := c.ListJobs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	res, err := c.Apply(ctx, jobs[0].ID, submission.ApplicationForm{
		FirstName:   "Paul",
		LastName:    "Martin",
		Email:       "paul@example.com",
		ResumeURL:   "https://cv.example/paul.pdf",
		AcceptTerms: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ApplicationID)

	_, err = c.GetJob(ctx, 999)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Job not found", apiErr.Message)

	err = c.Subscribe(ctx, "not-an-email")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email address", apiErr.Message)
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "email", apiErr.Fields[0].Field)
}
