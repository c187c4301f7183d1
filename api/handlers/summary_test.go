package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"leaguestats/api/dto"
	"leaguestats/api/filters"
	"leaguestats/api/services/testutil"
	internaltestutil "leaguestats/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSummaryRouter(service SummaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewSummaryHandler(&SummaryHandlerDependencies{SummaryService: service})
	engine.GET("/summary", handler.GetPlayerSummary)
	return engine
}

func doRequest(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestGetPlayerSummary(t *testing.T) {
	service := new(testutil.MockSummaryService)
	engine := setupSummaryRouter(service)

	summary := &dto.PlayerSummary{
		Account: dto.AccountInfo{GameName: "Faker", TagLine: "KR1", Puuid: "P"},
		Summary: dto.EmptySummary(),
		History: []dto.HistoryRow{},
		Meta:    dto.SummaryMeta{Mode: "ranked"},
	}
	service.On("GetPlayerSummary", mock.Anything, mock.MatchedBy(func(f *filters.PlayerSummaryFilter) bool {
		return f.GameName == "Faker" && f.TagLine == "KR1" && f.Mode == "ranked" && f.Count == 50
	})).Return(summary, nil)

	w := doRequest(engine, "/summary?riotId=Faker%23KR1&mode=ranked&count=50")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s-maxage=60", w.Header().Get("Cache-Control"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Faker", body["account"].(map[string]any)["gameName"])
	assert.Contains(t, body, "totals")
	assert.Contains(t, body, "powerPicks")
	assert.Equal(t, "ranked", body["_meta"].(map[string]any)["mode"])
	service.AssertExpectations(t)
}

func TestGetPlayerSummaryBadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing riot id", target: "/summary"},
		{name: "riot id without tag", target: "/summary?riotId=Faker"},
		{name: "bad region", target: "/summary?riotId=Faker%23KR1&region=moon"},
		{name: "bad mode", target: "/summary?riotId=Faker%23KR1&mode=nexus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(testutil.MockSummaryService)
			engine := setupSummaryRouter(service)

			w := doRequest(engine, tt.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
			service.AssertNotCalled(t, "GetPlayerSummary", mock.Anything, mock.Anything)
		})
	}
}

func TestGetPlayerSummaryErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: fmt.Errorf("couldn't resolve: %w", internaltestutil.NotFoundError("u")), expected: http.StatusNotFound},
		{name: "rate limited", err: internaltestutil.RateLimitError("u"), expected: http.StatusServiceUnavailable},
		{name: "timeout", err: internaltestutil.TimeoutError("u"), expected: http.StatusServiceUnavailable},
		{name: "upstream failure", err: internaltestutil.ServerError("u"), expected: http.StatusInternalServerError},
		{name: "cancelled", err: context.Canceled, expected: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(testutil.MockSummaryService)
			engine := setupSummaryRouter(service)
			service.On("GetPlayerSummary", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doRequest(engine, "/summary?riotId=Faker%23KR1")

			assert.Equal(t, tt.expected, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body["error"])
			assert.Empty(t, w.Header().Get("Cache-Control"))
		})
	}
}

func TestGetHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/healthz", NewHealthHandler().GetHealth)

	w := doRequest(engine, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
