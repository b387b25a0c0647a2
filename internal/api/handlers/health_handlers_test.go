package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/portfolio-service/portfolio_service/pkg/logger"
)

func setupHealthTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHealthHandler(logger.NewLogger(zaptest.NewLogger(t)))

	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	router.GET("/version", VersionHandler())
	return router
}

func TestHealth(t *testing.T) {
	router := setupHealthTest(t)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","version":"1.0.0"}`, w.Body.String())
}

func TestProbes(t *testing.T) {
	router := setupHealthTest(t)

	for _, path := range []string{"/ready", "/live", "/version"} {
		t.Run(path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
