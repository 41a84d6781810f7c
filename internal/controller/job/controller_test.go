package job

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/testutil"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type brokenStore struct {
	store.Store
}

func (brokenStore) ListJobs(context.Context, store.JobFilter) ([]model.Job, error) {
	return nil, errors.New("too many connections")
}

func setup(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	ctx := context.Background()
	for _, j := range []model.Job{
		{Title: "Auditeur", Location: "Paris", ContractType: "CDI", Description: "d", IsActive: true},
		{Title: "Stagiaire", Location: "Lyon", ContractType: "Stage", Description: "d", IsActive: false},
		{Title: "Consultant", Location: "Paris", ContractType: "CDI", Description: "d", IsActive: true},
	} {
		require.NoError(t, s.CreateJob(ctx, &j))
	}

	jc := NewJobController(s, zap.NewNop())
	r := gin.New()
	r.GET("/api/jobs", jc.ListJobs)
	r.GET("/api/jobs/:id", jc.GetJob)
	return r, s
}

func TestListJobs_ActiveOnly(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONListRequest("", r, "/api/jobs")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 2)
	assert.Equal(t, "Auditeur", resp[0]["title"])
	assert.Equal(t, "Consultant", resp[1]["title"])
	for _, j := range resp {
		assert.Equal(t, true, j["isActive"])
	}
}

func TestGetJob_InactiveStillVisible(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/2", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Stagiaire", resp["title"])
	assert.Equal(t, false, resp["isActive"])
	assert.Equal(t, "Stage", resp["contractType"])
}

func TestGetJob_Errors(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/x1", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid job ID", resp["error"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/api/jobs/4", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestListJobs_StoreFailure(t *testing.T) {
	jc := NewJobController(brokenStore{}, zap.NewNop())

	rec, resp, err := utilities.SimulateAPICall(jc.ListJobs, "/api/jobs", http.MethodGet, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch jobs", resp["error"])
}
