package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/src/api"
	"backoffice/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	handler := api.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		// fields added downstream end up in the request line
		utils.WithLogger(ctx, utils.LoggerFromContext(ctx).WithField("user", "jdoe"))
		w.WriteHeader(http.StatusCreated)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/drivers", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	line := buf.String()
	assert.Contains(t, line, `"msg":"request served"`)
	assert.Contains(t, line, `"status":201`)
	assert.Contains(t, line, `"path":"/drivers"`)
	assert.Contains(t, line, `"user":"jdoe"`)
}

func TestLoginLimiter(t *testing.T) {
	limiter := api.NewLoginLimiter(1, 1)
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	attempt := func(addr string, json bool) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		if json {
			req.Header.Set("Accept", "application/json")
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		return recorder.Code
	}

	assert.Equal(t, http.StatusNoContent, attempt("192.0.2.1:5000", false))
	assert.Equal(t, http.StatusTooManyRequests, attempt("192.0.2.1:5001", false))
	assert.Equal(t, http.StatusTooManyRequests, attempt("192.0.2.1:5002", true))
	assert.Equal(t, http.StatusNoContent, attempt("192.0.2.2:5000", false))

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, limiter.Cleanup(time.Millisecond))
	assert.Equal(t, 0, limiter.Cleanup(time.Millisecond))
}

func TestLoginLimiterIgnoresForwardedHeaders(t *testing.T) {
	limiter := api.NewLoginLimiter(1, 1)
	r := chi.NewRouter()
	r.Use(api.PeerAddr)
	r.Use(middleware.RealIP)
	r.With(limiter.Handler).Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	attempt := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.1:5000"
		req.Header.Set("X-Real-IP", forwarded)
		req.Header.Set("X-Forwarded-For", forwarded)
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)
		return recorder.Code
	}

	assert.Equal(t, http.StatusNoContent, attempt("198.51.100.1"))
	for _, forwarded := range []string{"198.51.100.2", "198.51.100.3", "203.0.113.9"} {
		assert.Equal(t, http.StatusTooManyRequests, attempt(forwarded), forwarded)
	}
}
