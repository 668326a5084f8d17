package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mamadou288/shop-api/internal/apisrv/admin"
	"github.com/mamadou288/shop-api/internal/auth/jwt"
	"github.com/mamadou288/shop-api/internal/cache"
	"github.com/mamadou288/shop-api/internal/dependency/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, c *Config) (http.Handler, *mocks.Repository, *mocks.Analytics, *jwtauth.JWTAuth) {
	t.Helper()
	repo := mocks.NewRepository(t)
	an := mocks.NewAnalytics(t)
	repo.EXPECT().Analytics().Return(an).Once()

	as, err := admin.New(repo, cache.NewFacade(cache.NewMemoryCache(nil), cache.Config{}, nil), admin.Config{}, nil)
	require.NoError(t, err)

	ja := jwtauth.New("HS256", []byte("secret"), nil)
	return New(c).Handler(as, ja), repo, an, ja
}

func TestRouting(t *testing.T) {
	h, repo, an, ja := newHandler(t, &Config{})

	repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/analytics/products", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tok, err := jwt.NewAdminToken(ja, time.Hour, "ops")
	require.NoError(t, err)

	an.EXPECT().ListDeliveredItems(mock.Anything).Return(nil, nil).Once()
	an.EXPECT().ListProducts(mock.Anything).Return(nil, nil).Once()
	an.EXPECT().ListCategories(mock.Anything).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics/products", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"generated_at"`)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/analytics/unknown", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"Resource not found."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"Resource not found."}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	h, repo, _, _ := newHandler(t, &Config{RateLimit: 2})
	repo.EXPECT().Ping(mock.Anything).Return(nil).Times(2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCORS(t *testing.T) {
	h, _, _, _ := newHandler(t, &Config{AllowedOrigins: []string{"https://admin.shop.example"}})

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/admin/analytics/business", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("https://admin.shop.example")
	assert.Equal(t, "https://admin.shop.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = preflight("http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = preflight("https://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		origin  string
		allowed []string
		want    bool
	}{
		{"http://localhost:3000", nil, true},
		{"https://localhost:8443", nil, true},
		{"http://localhost.evil.com", nil, false},
		{"https://admin.shop.example", []string{"https://admin.shop.example"}, true},
		{"https://other.example", []string{"https://admin.shop.example"}, false},
		{"https://any.example", []string{"*"}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isOriginAllowed(tt.origin, tt.allowed), tt.origin)
	}
}
