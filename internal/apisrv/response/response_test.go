package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
)

func TestErrResponse(t *testing.T) {
	cause := errors.New(`pq: relation "orders" does not exist`)

	tests := []struct {
		name     string
		renderer render.Renderer
		code     int
		body     string
	}{
		{"unauthorized", ErrUnauthorized(errors.New("token is expired")), http.StatusUnauthorized,
			`{"status":"Unauthorized","error":"token is expired"}`},
		{"forbidden", ErrForbidden(errors.New("admin role required")), http.StatusForbidden,
			`{"status":"Forbidden","error":"admin role required"}`},
		{"internal hides cause", ErrInternalServerError(cause), http.StatusInternalServerError,
			`{"status":"Internal Server Error"}`},
		{"unavailable hides cause", ErrServiceUnavailable(cause), http.StatusServiceUnavailable,
			`{"status":"Service Unavailable"}`},
		{"not found", ErrNotFound, http.StatusNotFound,
			`{"status":"Resource not found."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			assert.NoError(t, render.Render(rec, req, tt.renderer))
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"Resource not found."}`, rec.Body.String())
}
