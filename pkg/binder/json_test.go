package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/binder"
)

type payload struct {
	Name string `json:"name"`
}

func newRequest(contentType, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		var v payload
		err := binder.BindJSON(newRequest("application/json", `{"name":"ok"}`), &v)
		require.NoError(t, err)
		assert.Equal(t, "ok", v.Name)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		var v payload
		err := binder.BindJSON(newRequest("application/json; charset=utf-8", `{"name":"ok"}`), &v)
		assert.NoError(t, err)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		var v payload
		err := binder.BindJSON(newRequest("", `{"name":"ok"}`), &v)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		var v payload
		err := binder.BindJSON(newRequest("text/plain", `{"name":"ok"}`), &v)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		var v payload
		err := binder.BindJSON(newRequest("application/json", ""), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		var v payload
		err := binder.BindJSON(newRequest("application/json", `{"name":"ok","extra":1}`), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		var v payload
		err := binder.BindJSON(newRequest("application/json", `{"name":"ok"}{"name":"again"}`), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})
}
