package user_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorantiwarrohan3-stack/prasadamConnect/modules/user"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/logger"
)

func newTestRouter(repo user.Repository) http.Handler {
	log := logger.New(logger.WithOutput(io.Discard))
	svc := user.NewService(repo, log, []string{"address"})
	h := user.NewHandler(svc, log)

	r := chi.NewRouter()
	r.Mount("/api", user.Router(h))
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "203.0.113.195:54321"
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func registerBody(uid, phone, email string) map[string]any {
	return map[string]any{
		"uid":         uid,
		"name":        "Test User",
		"email":       email,
		"phoneNumber": phone,
		"address":     "123 Main St",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("end to end registration and conflict", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(newMemRepo())

		rec, body := doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
			registerBody("u1", "+19995550001", "a@b.com"))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, body["success"])
		u := body["user"].(map[string]any)
		assert.Equal(t, "u1", u["uid"])
		assert.Equal(t, "a@b.com", u["email"])
		assert.NotContains(t, u, "address")

		// Same phone, different uid: exactly the phone conflict.
		rec, body = doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
			registerBody("u2", "+19995550001", "c@d.com"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "phone already registered", body["error"])

		// The original user is intact and redacted.
		rec, body = doJSON(t, h, http.MethodGet, "/api/user/u1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		u = body["user"].(map[string]any)
		assert.Equal(t, "u1", u["uid"])
		assert.Equal(t, "+19995550001", u["phoneNumber"])
		assert.NotContains(t, u, "address")
	})

	t.Run("register alias runs the same flow", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(newMemRepo())

		rec, _ := doJSON(t, h, http.MethodPost, "/api/register",
			registerBody("u1", "+19995550001", "a@b.com"))
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec, body := doJSON(t, h, http.MethodPost, "/api/register",
			registerBody("u1", "+19995550002", "c@d.com"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "user already registered", body["error"])
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(newMemRepo())

		tests := []struct {
			name string
			body map[string]any
		}{
			{"missing uid", registerBody("", "+19995550001", "a@b.com")},
			{"bad email", registerBody("u1", "+19995550001", "a@b")},
			{"phone without plus", registerBody("u1", "19995550001", "a@b.com")},
			{"phone too long", registerBody("u1", "+1415555123456789", "a@b.com")},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec, body := doJSON(t, h, http.MethodPost, "/api/create-user-with-login", tt.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, false, body["success"])
				assert.NotEmpty(t, body["error"])
			})
		}
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		t.Parallel()
		repo := newMemRepo()
		repo.failErr = errors.New("connection reset by mongod")
		h := newTestRouter(repo)

		rec, body := doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
			registerBody("u1", "+19995550001", "a@b.com"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", body["error"])
	})
}

func TestCheckUserEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestRouter(newMemRepo())

	rec, body := doJSON(t, h, http.MethodPost, "/api/check-user",
		map[string]any{"phoneNumber": "+19995550001"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["exists"])

	_, _ = doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
		registerBody("u1", "+19995550001", "a@b.com"))

	rec, body = doJSON(t, h, http.MethodPost, "/api/check-user",
		map[string]any{"phoneNumber": "+19995550001"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["exists"])

	rec, _ = doJSON(t, h, http.MethodPost, "/api/check-user",
		map[string]any{"phoneNumber": "19995550001"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHistoryEndpoints(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	h := newTestRouter(repo)

	_, _ = doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
		registerBody("u1", "+19995550001", "a@b.com"))

	t.Run("record login", func(t *testing.T) {
		rec, _ := doJSON(t, h, http.MethodPost, "/api/login-history",
			map[string]any{"uid": "u1", "phoneNumber": "+19995550001"})
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec, _ = doJSON(t, h, http.MethodPost, "/api/login-history",
			map[string]any{"uid": "u1", "phoneNumber": "+19995559999"})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec, _ = doJSON(t, h, http.MethodPost, "/api/login-history",
			map[string]any{"uid": "ghost", "phoneNumber": "+19995550001"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("query clamps the limit", func(t *testing.T) {
		for range 120 {
			rec, _ := doJSON(t, h, http.MethodPost, "/api/login-history",
				map[string]any{"uid": "u1", "phoneNumber": "+19995550001"})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec, body := doJSON(t, h, http.MethodGet, "/api/login-history/u1?limit=500", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(100), body["count"])
		history := body["history"].([]any)
		assert.Len(t, history, 100)
		first := history[0].(map[string]any)
		assert.NotEmpty(t, first["id"])
		assert.Equal(t, "u1", first["uid"])

		rec, _ = doJSON(t, h, http.MethodGet, "/api/login-history/u1?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestRouter(newMemRepo())

	rec, body := doJSON(t, h, http.MethodGet, "/api/user/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", body["error"])
}

func TestUpdateUserEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestRouter(newMemRepo())

	_, _ = doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
		registerBody("u1", "+19995550001", "a@b.com"))
	_, _ = doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
		registerBody("u2", "+19995550002", "c@d.com"))

	t.Run("update name", func(t *testing.T) {
		rec, body := doJSON(t, h, http.MethodPut, "/api/user/u1",
			map[string]any{"name": "Renamed"})
		assert.Equal(t, http.StatusOK, rec.Code)
		u := body["user"].(map[string]any)
		assert.Equal(t, "Renamed", u["name"])
	})

	t.Run("email owned by another uid conflicts", func(t *testing.T) {
		rec, body := doJSON(t, h, http.MethodPut, "/api/user/u2",
			map[string]any{"email": "a@b.com"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "email already registered", body["error"])
	})

	t.Run("phone is rejected by the strict binder", func(t *testing.T) {
		rec, _ := doJSON(t, h, http.MethodPut, "/api/user/u1",
			map[string]any{"phoneNumber": "+19995559999"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty update", func(t *testing.T) {
		rec, _ := doJSON(t, h, http.MethodPut, "/api/user/u1", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown uid", func(t *testing.T) {
		rec, _ := doJSON(t, h, http.MethodPut, "/api/user/ghost",
			map[string]any{"name": "x"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUnregisterEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestRouter(newMemRepo())

	_, _ = doJSON(t, h, http.MethodPost, "/api/create-user-with-login",
		registerBody("u1", "+19995550001", "a@b.com"))

	rec, _ := doJSON(t, h, http.MethodPost, "/api/unregister", map[string]any{"uid": "u1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, h, http.MethodGet, "/api/user/u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, h, http.MethodPost, "/api/unregister", map[string]any{"uid": "u1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
