package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crowdreport-be/controllers"
	"crowdreport-be/models"
	"crowdreport-be/routes"
	"crowdreport-be/services"
	"crowdreport-be/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *store.ReportStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	reports := services.NewReportService(st)
	votes := services.NewVoteEngine(st)
	stats := services.NewStatsAggregator(st, "15 minutes", 5)

	r := gin.New()
	routes.ReportRoutes(r, controllers.NewReportController(reports, votes, stats))
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSubmitReportEndpoint(t *testing.T) {
	r, st := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/reports", models.SubmitReportRequest{
		Type:     "theft",
		Title:    "Bag snatched",
		Location: "Galle Face",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Report submitted successfully", env.Message)

	var report models.IncidentReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, models.Medium, report.Severity)
	assert.Equal(t, models.Pending, report.Status)
	assert.Equal(t, models.AnonymousUserID, report.UserID)
	assert.Equal(t, 0, report.Upvotes)
	assert.Equal(t, 1, st.Len())
}

func TestSubmitReportWithUserHeader(t *testing.T) {
	r, _ := setupRouter(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/reports", models.SubmitReportRequest{
		Type:     "harassment",
		Title:    "Catcalling near the station",
		Location: "Maradana Junction",
	}, map[string]string{"X-User-ID": "user123"})

	var report models.IncidentReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "user123", report.UserID)
}

func TestSubmitReportValidation(t *testing.T) {
	r, st := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/reports", models.SubmitReportRequest{
		Type:     "theft",
		Location: "Galle Face",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "title")
	assert.Equal(t, 0, st.Len())
}

func TestSubmitReportMalformedBody(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReportsEndpoint(t *testing.T) {
	r, st := setupRouter(t)
	require.NoError(t, store.SeedDemoData(st))

	w, env := doJSON(t, r, http.MethodGet, "/api/reports", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var reports []models.IncidentReport
	require.NoError(t, json.Unmarshal(env.Data, &reports))
	require.Len(t, reports, st.Len())
	assert.Equal(t, "demo-1", reports[0].ID)
}

func TestGetReportEndpoint(t *testing.T) {
	r, st := setupRouter(t)
	require.NoError(t, store.SeedDemoData(st))

	w, env := doJSON(t, r, http.MethodGet, "/api/reports/demo-1", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var detail models.ReportDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "demo-1", detail.ID)
	assert.Equal(t, 13, detail.NetScore)
	assert.Equal(t, 88, detail.CredibilityPercent)
	for _, related := range detail.Related {
		assert.NotEqual(t, "demo-1", related.ID)
		assert.Equal(t, detail.Location, related.Location)
	}
	assert.LessOrEqual(t, len(detail.Related), 3)
}

func TestGetReportNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/reports/nonexistent-id", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestVoteEndpoint(t *testing.T) {
	r, st := setupRouter(t)
	require.NoError(t, store.SeedDemoData(st))

	w, env := doJSON(t, r, http.MethodPost, "/api/reports/demo-1/vote", models.VoteRequest{Vote: "upvote"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Vote recorded successfully", env.Message)

	var report models.IncidentReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, 16, report.Upvotes)
	assert.Equal(t, 2, report.Downvotes)
}

func TestVoteEndpointUnknownID(t *testing.T) {
	r, st := setupRouter(t)
	require.NoError(t, store.SeedDemoData(st))
	before := st.Len()

	w, env := doJSON(t, r, http.MethodPost, "/api/reports/nonexistent-id/vote", models.VoteRequest{Vote: "upvote"}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, before, st.Len())
}

func TestVoteEndpointInvalidKind(t *testing.T) {
	r, st := setupRouter(t)
	require.NoError(t, store.SeedDemoData(st))

	w, env := doJSON(t, r, http.MethodPost, "/api/reports/demo-1/vote", models.VoteRequest{Vote: "maybe"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	got, err := st.GetByID("demo-1")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Upvotes)
	assert.Equal(t, 2, got.Downvotes)
}

func TestStatsEndpoint(t *testing.T) {
	r, st := setupRouter(t)
	require.NoError(t, store.SeedDemoData(st))

	w, env := doJSON(t, r, http.MethodGet, "/api/reports/stats", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats models.StatsData
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, st.Len(), stats.TotalReports)
	assert.LessOrEqual(t, stats.VerifiedReports+stats.PendingReports, stats.TotalReports)
	assert.Equal(t, "15 minutes", stats.AverageResponseTime)
	assert.NotEmpty(t, stats.TopHotspots)
}

func TestMapEndpoint(t *testing.T) {
	r, st := setupRouter(t)
	require.NoError(t, store.SeedDemoData(st))

	// One report without coordinates must not appear on the map.
	_, err := st.Create(models.IncidentReport{
		ID:       "no-coords",
		Title:    "Unlit alley",
		Location: "Nugegoda",
		Type:     models.PoorLighting,
		Severity: models.Low,
		Status:   models.Pending,
		UserID:   models.AnonymousUserID,
	})
	require.NoError(t, err)

	w, env := doJSON(t, r, http.MethodGet, "/api/reports/map", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var markers []models.MapMarker
	require.NoError(t, json.Unmarshal(env.Data, &markers))
	assert.Len(t, markers, st.Len()-1)
	for _, m := range markers {
		assert.NotEqual(t, "no-coords", m.ID)
		assert.NotEmpty(t, m.Location)
		assert.True(t, m.Type.Valid())
		assert.True(t, m.Severity.Valid())
	}
}
