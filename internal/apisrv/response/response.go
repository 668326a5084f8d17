// Package response holds the JSON error envelope shared by HTTP handlers.
package response

import (
	"net/http"

	"github.com/go-chi/render"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// newErr builds the envelope. Server errors carry the status text only; the
// caller logs err.
func newErr(code int, err error) *ErrResponse {
	e := &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
	}
	if err != nil && code < http.StatusInternalServerError {
		e.ErrorText = err.Error()
	}
	return e
}

func ErrUnauthorized(err error) render.Renderer {
	return newErr(http.StatusUnauthorized, err)
}

func ErrForbidden(err error) render.Renderer {
	return newErr(http.StatusForbidden, err)
}

func ErrInternalServerError(err error) render.Renderer {
	return newErr(http.StatusInternalServerError, err)
}

func ErrServiceUnavailable(err error) render.Renderer {
	return newErr(http.StatusServiceUnavailable, err)
}

var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, StatusText: "Resource not found."}

// NotFound renders ErrNotFound.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Render(w, r, ErrNotFound)
}
