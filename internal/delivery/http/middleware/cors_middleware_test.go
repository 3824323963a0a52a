package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware_SetsConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware("https://app.mediq.example")

	rec := httptest.NewRecorder()
	m.Handle(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hospitals", nil))

	assert.Equal(t, "https://app.mediq.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSMiddleware_EmptyOriginDefaultsToWildcard(t *testing.T) {
	m := NewCORSMiddleware("")

	rec := httptest.NewRecorder()
	m.Handle(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hospitals", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware("*")

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/hospitals", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, handlerCalled)
}
