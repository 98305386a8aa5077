package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/groupchat/internal/testutil"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	db, mock := testutil.NewMockDBWithPings(t)
	return NewRouter(db, quietLogger()), mock
}

func TestIndex(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Chat API is running!", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestHealth(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		h, mock := newTestRouter(t)
		mock.ExpectPing()

		rec := do(t, h, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		h, mock := newTestRouter(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rec := do(t, h, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"error":"database unavailable"}`, rec.Body.String())
	})
}

func TestUnknownRoutesAnswerJSON(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Route not found."}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/groups/1/messages", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed."}`, rec.Body.String())
}

func TestRoutesAreMounted(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users WHERE username").WithArgs("alice").WillReturnRows(testutil.ExistsRows(false))
	mock.ExpectQuery("INSERT INTO users").WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "alice"))
	rec := do(t, h, http.MethodPost, "/users", `{"username":" alice "}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"username":"alice"}`, rec.Body.String())

	mock.ExpectQuery("FROM groups WHERE name").WithArgs("general").WillReturnRows(testutil.ExistsRows(false))
	mock.ExpectQuery("INSERT INTO groups").WithArgs("general").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "general"))
	rec = do(t, h, http.MethodPost, "/groups", `{"name":"general"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	mock.ExpectQuery("FROM groups WHERE id").WithArgs(int64(1)).WillReturnRows(testutil.ExistsRows(true))
	mock.ExpectQuery("FROM messages m").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at", "user_id", "username"}))
	rec = do(t, h, http.MethodGet, "/groups/1/messages", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInternalErrorsAreHidden(t *testing.T) {
	h, mock := newTestRouter(t)
	mock.ExpectQuery("FROM users WHERE username").WithArgs("alice").
		WillReturnError(errors.New(`pq: relation "users" does not exist`))

	rec := do(t, h, http.MethodPost, "/users", `{"username":"alice"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)
	do(t, h, http.MethodGet, "/", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `groupchat_http_requests_total{method="GET",route="/",status="200"}`)
}

func TestSwaggerIsServed(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/groups/{id}/messages")
}
