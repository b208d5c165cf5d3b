package middleware_test

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentflow/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func simulatedEngine(cfg middleware.SimulatorConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NetworkSimulator(cfg, rand.New(rand.NewSource(1))))
	r.GET("/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/jobs", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.PATCH("/jobs/1/reorder", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func serve(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestNetworkSimulator(t *testing.T) {
	t.Run("Should pass everything through when rates are zero", func(t *testing.T) {
		r := simulatedEngine(middleware.SimulatorConfig{})
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/jobs"))
		assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/jobs"))
	})

	t.Run("Should fail every write at rate one but leave reads alone", func(t *testing.T) {
		r := simulatedEngine(middleware.SimulatorConfig{WriteErrorRate: 1})
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/jobs"))
		assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodPost, "/jobs"))
	})

	t.Run("Should fail reorders at rate one before the handler runs", func(t *testing.T) {
		r := simulatedEngine(middleware.SimulatorConfig{ReorderFailRate: 1})
		assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodPatch, "/jobs/1/reorder"))
	})
}
