package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"SocialMedia/models"
	"SocialMedia/pkg/config"
	"SocialMedia/pkg/database"
)

func newRouter(t *testing.T, capacity int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := logtest.NewNullLogger()

	db, err := database.Open(config.Settings{DBDriver: "sqlite", DBDSN: ":memory:", DBMaxOpenConns: 1, DBMaxIdleConns: 1}, log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db))
	t.Cleanup(func() { _ = database.Close(db) })

	r := gin.New()
	cleanup := RegisterRoutes(r, db, config.Settings{
		RateLimitWindow:   time.Minute,
		RateLimitCapacity: capacity,
		RateLimitMaxKeys:  100,
	}, log)
	t.Cleanup(cleanup)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestAccountEndpoints(t *testing.T) {
	req := require.New(t)
	r := newRouter(t, 0)

	w := do(r, http.MethodPost, "/register", `{"username":"bob","password":"secret"}`)
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"account_id":1,"username":"bob","password":"secret"}`, w.Body.String())

	w = do(r, http.MethodPost, "/register", `{"username":"bob","password":"secret"}`)
	req.Equal(http.StatusBadRequest, w.Code)

	for _, body := range []string{
		`{"username":"","password":"secret"}`,
		`{"username":"carol","password":"abc"}`,
		`{"username":"carol"}`,
		`not json`,
	} {
		req.Equal(http.StatusBadRequest, do(r, http.MethodPost, "/register", body).Code, body)
	}

	wrongPass := do(r, http.MethodPost, "/login", `{"username":"bob","password":"wrong"}`)
	unknown := do(r, http.MethodPost, "/login", `{"username":"nobody","password":"secret"}`)
	req.Equal(http.StatusUnauthorized, wrongPass.Code)
	req.Equal(http.StatusUnauthorized, unknown.Code)
	req.Equal(wrongPass.Body.String(), unknown.Body.String())

	w = do(r, http.MethodPost, "/login", `{"username":"bob","password":"secret"}`)
	req.Equal(http.StatusOK, w.Code)
	req.Equal(models.Account{AccountID: 1, Username: "bob", Password: "secret"}, decode[models.Account](t, w))

	w = do(r, http.MethodGet, "/accounts", "")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`[{"account_id":1,"username":"bob"}]`, w.Body.String())
}

func TestMessageEndpoints(t *testing.T) {
	req := require.New(t)
	r := newRouter(t, 0)
	req.Equal(http.StatusOK, do(r, http.MethodPost, "/register", `{"username":"bob","password":"secret"}`).Code)

	w := do(r, http.MethodGet, "/messages", "")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`[]`, w.Body.String())

	w = do(r, http.MethodPost, "/messages", `{"posted_by":1,"message_text":"hi","time_posted_epoch":1000}`)
	req.Equal(http.StatusOK, w.Code)
	created := decode[models.Message](t, w)
	req.Equal(models.Message{MessageID: 1, PostedBy: 1, MessageText: "hi", TimePostedEpoch: 1000}, created)

	// unknown author, empty and oversized text
	req.Equal(http.StatusBadRequest, do(r, http.MethodPost, "/messages", `{"posted_by":2,"message_text":"hi"}`).Code)
	req.Equal(http.StatusBadRequest, do(r, http.MethodPost, "/messages", `{"posted_by":1,"message_text":""}`).Code)
	req.Equal(http.StatusBadRequest, do(r, http.MethodPost, "/messages",
		`{"posted_by":1,"message_text":"`+strings.Repeat("a", 256)+`"}`).Code)

	w = do(r, http.MethodGet, "/messages/1", "")
	req.Equal(http.StatusOK, w.Code)
	req.Equal(created, decode[models.Message](t, w))

	w = do(r, http.MethodGet, "/messages/99", "")
	req.Equal(http.StatusOK, w.Code)
	req.Empty(w.Body.String())

	req.Equal(http.StatusBadRequest, do(r, http.MethodGet, "/messages/abc", "").Code)

	w = do(r, http.MethodPatch, "/messages/1", `{"message_text":"`+strings.Repeat("a", 256)+`"}`)
	req.Equal(http.StatusBadRequest, w.Code)
	req.Equal("hi", decode[models.Message](t, do(r, http.MethodGet, "/messages/1", "")).MessageText)

	req.Equal(http.StatusBadRequest, do(r, http.MethodPatch, "/messages/1", `{"message_text":""}`).Code)
	req.Equal(http.StatusBadRequest, do(r, http.MethodPatch, "/messages/2", `{"message_text":"hello"}`).Code)

	w = do(r, http.MethodPatch, "/messages/1", `{"message_text":"hello"}`)
	req.Equal(http.StatusOK, w.Code)
	req.Equal(models.Message{MessageID: 1, PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000}, decode[models.Message](t, w))
	req.Equal("hello", decode[models.Message](t, do(r, http.MethodGet, "/messages/1", "")).MessageText)

	w = do(r, http.MethodGet, "/accounts/1/messages", "")
	req.Equal(http.StatusOK, w.Code)
	req.Len(decode[[]models.Message](t, w), 1)
	w = do(r, http.MethodGet, "/accounts/7/messages", "")
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`[]`, w.Body.String())

	w = do(r, http.MethodDelete, "/messages/1", "")
	req.Equal(http.StatusOK, w.Code)
	req.Equal("hello", decode[models.Message](t, w).MessageText)

	w = do(r, http.MethodDelete, "/messages/1", "")
	req.Equal(http.StatusOK, w.Code)
	req.Empty(w.Body.String())
}

func TestRateLimitedWrites(t *testing.T) {
	req := require.New(t)
	r := newRouter(t, 2)

	req.Equal(http.StatusOK, do(r, http.MethodPost, "/register", `{"username":"a","password":"secret"}`).Code)
	req.Equal(http.StatusOK, do(r, http.MethodPost, "/register", `{"username":"b","password":"secret"}`).Code)
	req.Equal(http.StatusTooManyRequests, do(r, http.MethodPost, "/register", `{"username":"c","password":"secret"}`).Code)

	// reads are not limited
	for i := 0; i < 5; i++ {
		req.Equal(http.StatusOK, do(r, http.MethodGet, "/messages", "").Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	req := require.New(t)
	r := newRouter(t, 0)

	w := do(r, http.MethodGet, "/", "")
	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), "running")

	do(r, http.MethodGet, "/messages", "")
	w = do(r, http.MethodGet, "/metrics", "")
	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), `http_requests_total{method="GET",route="/messages",status="200"} 1`)
	req.Contains(w.Body.String(), "go_goroutines")
}
