package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/groupchat/internal/logging"
)

func newJSONLogger(buf *bytes.Buffer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newJSONLogger(&buf)

	var scoped *logrus.Entry
	handler := middleware.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scoped = logging.FromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Group not found."}`))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/groups/9/messages", nil))

	require.NotNil(t, scoped)
	assert.NotEmpty(t, scoped.Data["request_id"])

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/groups/9/messages", line["path"])
	assert.EqualValues(t, 404, line["status"])
	assert.EqualValues(t, len(`{"error":"Group not found."}`), line["bytes"])
	assert.Equal(t, scoped.Data["request_id"], line["request_id"])
}

func TestRequestLoggerDefaultsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := newJSONLogger(&buf)

	handler := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.EqualValues(t, 200, line["status"])
}
