package main

import (
	"bytes"
	"log/slog"
	"miniSheet/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expectedApiRoutes := [][3]string{
		{http.MethodPost, "/cells/A1", "SetCellAction"},
		{http.MethodGet, "/cells/A1", "GetCellAction"},
		{http.MethodGet, "/cells", "GetGridAction"},
		{http.MethodPost, "/evaluate", "EvaluateAction"},
		{http.MethodPost, "/cells/A1/subscribe", "SubscribeAction"},
	}

	for _, expectedRoute := range expectedApiRoutes {
		t.Run("Route "+expectedRoute[2], func(t *testing.T) {
			apiController := mocks.NewApiController(t)
			router := SetupRouter(apiController, nil)

			apiController.On(expectedRoute[2], mock.Anything).Return()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(expectedRoute[0], "/api/"+ApiVersion+expectedRoute[1], nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			apiController.AssertNumberOfCalls(t, expectedRoute[2], 1)
		})
	}

	t.Run("healthcheck", func(t *testing.T) {
		apiController := mocks.NewApiController(t)
		router := SetupRouter(apiController, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "health", w.Body.String())
	})
}

func TestRequestIdMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("issues a new id", func(t *testing.T) {
		router := SetupRouter(mocks.NewApiController(t), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)
		router.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(RequestIdHeader))
		assert.NoError(t, err)
	})

	t.Run("keeps the incoming id", func(t *testing.T) {
		router := SetupRouter(mocks.NewApiController(t), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(RequestIdHeader, "trace-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, "trace-1", w.Header().Get(RequestIdHeader))
	})

	t.Run("logs the request", func(t *testing.T) {
		logs := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logs, nil))
		router := SetupRouter(mocks.NewApiController(t), logger)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(RequestIdHeader, "trace-2")
		router.ServeHTTP(w, req)

		assert.Contains(t, logs.String(), `"request_id":"trace-2"`)
		assert.Contains(t, logs.String(), `"path":"/healthcheck"`)
		assert.Contains(t, logs.String(), `"status":200`)
	})
}
