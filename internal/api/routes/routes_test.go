package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/portfolio-service/portfolio_service/internal/domain/services/portfolio"
	"github.com/portfolio-service/portfolio_service/internal/infrastructure/config"
	"github.com/portfolio-service/portfolio_service/pkg/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "development",
		LogLevel:    "debug",
		Server: config.ServerConfig{
			Port:           8080,
			Host:           "127.0.0.1",
			AllowedOrigins: []string{"*"},
		},
	}
	log := logger.NewLogger(zaptest.NewLogger(t))

	return SetupRoutes(cfg, log, portfolio.NewService(log))
}

func TestRoutes_AllEndpointsRespond(t *testing.T) {
	router := setupRouter(t)

	paths := []string{"/health", "/ready", "/live", "/version", "/metrics", "/assets", "/insights"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRoutes_CORSHeadersOnEveryResponse(t *testing.T) {
	router := setupRouter(t)

	paths := []string{"/health", "/assets", "/insights"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestRoutes_MetricsExposition(t *testing.T) {
	router := setupRouter(t)

	// Hit a business endpoint first so portfolio metrics are registered with
	// non-zero samples.
	req, _ := http.NewRequest(http.MethodGet, "/insights", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "portfolio_http_requests_total")
	assert.Contains(t, w.Body.String(), "portfolio_total_value_usd")
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := setupRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
