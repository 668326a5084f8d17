package jwt

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/mamadou288/shop-api/internal/apisrv/response"
	gerr "github.com/mamadou288/shop-api/internal/errors"
)

// AdminOnly rejects requests whose token, verified upstream by
// jwtauth.Verifier, is missing, invalid or lacks the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			if err == nil {
				err = gerr.ErrUnauthorized
			}
			slog.Default().InfoContext(r.Context(), "rejected request",
				slog.String("path", r.URL.Path),
				slog.String("err", err.Error()),
			)
			render.Render(w, r, response.ErrUnauthorized(err))
			return
		}
		if !IsAdmin(claims) {
			slog.Default().InfoContext(r.Context(), "non-admin token",
				slog.String("path", r.URL.Path),
				slog.String("sub", token.Subject()),
			)
			render.Render(w, r, response.ErrForbidden(gerr.ErrForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}
