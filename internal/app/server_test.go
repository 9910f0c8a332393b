package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/dashboard"
	"github.com/AymenS02/united-real-estate/internal/platform/database"
	"github.com/AymenS02/united-real-estate/internal/property"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := &config.Config{
		GinMode:            gin.TestMode,
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		StoreDriver:        config.StoreDriverSQLite,
		SQLitePath:         ":memory:",
		LogLevel:           "silent",
		CORSAllowedOrigins: []string{"*"},
		DashboardEnabled:   true,
	}
	if mutate != nil {
		mutate(cfg)
	}

	logger := zap.NewNop()
	gw := database.NewGateway(cfg, logger)
	t.Cleanup(func() { _ = gw.Close(context.Background()) })
	repo := property.NewGORMRepository(gw)

	propertyHandler := property.NewHandler(property.NewService(repo, logger), logger)
	dashboardHandler, err := dashboard.NewHandler(dashboard.NewAPIClient("http://127.0.0.1:1/api", 0, logger), logger)
	require.NoError(t, err)

	srv, err := NewServer(cfg, logger, propertyHandler, dashboardHandler, repo)
	require.NoError(t, err)
	require.NoError(t, srv.Migrate(context.Background()))
	return srv
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"UP"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_PropertiesMounted(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/properties", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestServer_UnknownRoutesUseEnvelope(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	w = serve(srv, httptest.NewRequest(http.MethodPut, "/api/properties", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/properties", nil)
	req.Header.Set("Origin", "http://other.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := serve(srv, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_CORSRestrictedOrigins(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.CORSAllowedOrigins = []string{"http://allowed.example"}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Origin", "http://allowed.example")
	w := serve(srv, req)
	assert.Equal(t, "http://allowed.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Origin", "http://other.example")
	w = serve(srv, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestServer_DashboardToggle(t *testing.T) {
	enabled := newTestServer(t, nil)
	w := serve(enabled, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	disabled := newTestServer(t, func(cfg *config.Config) { cfg.DashboardEnabled = false })
	w = serve(disabled, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
