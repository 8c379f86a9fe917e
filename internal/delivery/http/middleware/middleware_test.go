package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"medical-profile-qr/internal/delivery/web"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, buf
}

func TestRecoveryMiddlewareRendersErrorPage(t *testing.T) {
	log, logBuf := newBufferedLogger()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	recovery := NewRecoveryMiddleware(log, renderer)
	wrapped := recovery.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/jane", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected error")
	assert.Contains(t, logBuf.String(), "boom")
	assert.Contains(t, logBuf.String(), "/profile/jane")
}

func TestRecoveryMiddlewarePassesThrough(t *testing.T) {
	log, _ := newBufferedLogger()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	recovery := NewRecoveryMiddleware(log, renderer)
	wrapped := recovery.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestLoggerMiddlewareAssignsID(t *testing.T) {
	log, logBuf := newBufferedLogger()

	var seenID string
	var seenOK bool
	requestLogger := NewRequestLoggerMiddleware(log)
	wrapped := requestLogger.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, seenOK = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/jane", nil))

	// The id reaches downstream handlers and the response header.
	assert.True(t, seenOK)
	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get("X-Request-ID"))

	logged := logBuf.String()
	assert.Contains(t, logged, seenID)
	assert.Contains(t, logged, "/profile/jane")
	assert.Contains(t, logged, "418")
}

func TestGetRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	requestID, ok := GetRequestIDFromContext(req.Context())
	assert.False(t, ok)
	assert.Empty(t, requestID)
}
