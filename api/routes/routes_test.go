package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"leaguestats/api/handlers"
	"leaguestats/api/services/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	summaryHandler := handlers.NewSummaryHandler(&handlers.SummaryHandlerDependencies{
		SummaryService: new(testutil.MockSummaryService),
	})
	router.SetupRoutes(summaryHandler, handlers.NewHealthHandler(), "ignored")
	router.SetupMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("metrics"))
	}))

	paths := map[string]bool{}
	for _, route := range router.Engine.Routes() {
		paths[route.Method+" "+route.Path] = true
	}
	assert.True(t, paths["GET /api/v1/player/summary"])
	assert.True(t, paths["GET /healthz"])
	assert.True(t, paths["GET /metrics"])
	assert.Len(t, paths, 3)

	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "metrics", w.Body.String())
}

func TestRequestId(t *testing.T) {
	router := setupTestRouter()
	router.Engine.Use(RequestId())
	router.Engine.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(handlers.RequestIdKey))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		_, err := uuid.Parse(w.Body.String())
		require.NoError(t, err)
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-Id"))
	})

	t.Run("kept from the caller", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set("X-Request-Id", "abc")
		router.Engine.ServeHTTP(w, req)

		assert.Equal(t, "abc", w.Body.String())
		assert.Equal(t, "abc", w.Header().Get("X-Request-Id"))
	})
}
