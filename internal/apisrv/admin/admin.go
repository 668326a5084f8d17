package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mamadou288/shop-api/internal/apisrv/response"
	"github.com/mamadou288/shop-api/internal/cache"
	"github.com/mamadou288/shop-api/internal/currency"
	"github.com/mamadou288/shop-api/internal/dependency"
	"github.com/mamadou288/shop-api/internal/dto"
	"github.com/mamadou288/shop-api/internal/entity"
	gerr "github.com/mamadou288/shop-api/internal/errors"
	"github.com/mamadou288/shop-api/internal/kpi"
	"github.com/mamadou288/shop-api/internal/period"
)

// Config holds presentation defaults of the analytics endpoints.
type Config struct {
	Timezone string `mapstructure:"timezone"`
	Currency string `mapstructure:"currency"`
	Language string `mapstructure:"language"`
}

// Server implements the admin analytics handlers.
type Server struct {
	repo     dependency.Repository
	engine   *kpi.Engine
	cache    *cache.Facade
	resolver *period.Resolver
	opts     dto.Options
}

// New creates a new server with analytics handlers. A nil clock means time.Now.
func New(r dependency.Repository, f *cache.Facade, c Config, now func() time.Time) (*Server, error) {
	loc := time.UTC
	if c.Timezone != "" {
		l, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("can't load timezone %q: %w", c.Timezone, err)
		}
		loc = l
	}
	return &Server{
		repo:     r,
		engine:   kpi.New(r.Analytics()),
		cache:    f,
		resolver: period.NewResolver(loc, now),
		opts: dto.Options{
			Currency: currency.Normalize(c.Currency),
			Language: dto.ParseLanguage(c.Language),
			Location: loc,
		},
	}, nil
}

// Routes mounts the analytics endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.NotFound(response.NotFound)
	r.Get("/dashboard", s.Dashboard)
	r.Get("/business", s.Business)
	r.Get("/products", s.Products)
	r.Get("/users", s.Users)
	return r
}

// options returns the render options for r. The lang query parameter wins
// over Accept-Language, which wins over the configured language.
func (s *Server) options(r *http.Request) dto.Options {
	o := s.opts
	o.Language = dto.MatchLanguage(s.opts.Language, r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	return o
}

func (s *Server) timeRange(r *http.Request) entity.TimeRange {
	return s.resolver.Resolve(r.Context(), period.QueryFromValues(r.URL.Query()))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Default().ErrorContext(r.Context(), msg,
		slog.String("err", err.Error()),
	)
	render.Render(w, r, response.ErrInternalServerError(err))
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	tr := s.timeRange(r)
	e, err := cache.Fetch(r.Context(), s.cache, s.cache.Key(cache.FamilyDashboard, &tr),
		func(ctx context.Context) (*entity.DashboardKPIs, error) {
			return s.engine.Dashboard(ctx, tr)
		})
	if err != nil {
		s.fail(w, r, "can't get dashboard kpis", err)
		return
	}

	o := s.options(r)
	resp := dto.ConvertDashboardKPIs(e.Value, o)
	resp.GeneratedAt = o.FormatTime(e.GeneratedAt)
	render.JSON(w, r, resp)
}

func (s *Server) Business(w http.ResponseWriter, r *http.Request) {
	tr := s.timeRange(r)
	e, err := cache.Fetch(r.Context(), s.cache, s.cache.Key(cache.FamilyBusiness, &tr),
		func(ctx context.Context) (*entity.BusinessKPIs, error) {
			return s.engine.Business(ctx, tr)
		})
	if err != nil {
		s.fail(w, r, "can't get business kpis", err)
		return
	}

	o := s.options(r)
	render.JSON(w, r, dto.BusinessResponse{
		Business:    dto.ConvertBusinessKPIs(e.Value, o),
		GeneratedAt: o.FormatTime(e.GeneratedAt),
	})
}

// Products ignores date parameters: product KPIs are all-time.
func (s *Server) Products(w http.ResponseWriter, r *http.Request) {
	e, err := cache.Fetch(r.Context(), s.cache, s.cache.Key(cache.FamilyProducts, nil),
		func(ctx context.Context) (*entity.ProductKPIs, error) {
			return s.engine.Products(ctx)
		})
	if err != nil {
		s.fail(w, r, "can't get product kpis", err)
		return
	}

	o := s.options(r)
	render.JSON(w, r, dto.ProductsResponse{
		Products:    dto.ConvertProductKPIs(e.Value, o),
		GeneratedAt: o.FormatTime(e.GeneratedAt),
	})
}

func (s *Server) Users(w http.ResponseWriter, r *http.Request) {
	tr := s.timeRange(r)
	e, err := cache.Fetch(r.Context(), s.cache, s.cache.Key(cache.FamilyUsers, &tr),
		func(ctx context.Context) (*entity.UserKPIs, error) {
			return s.engine.Users(ctx, tr)
		})
	if err != nil {
		s.fail(w, r, "can't get user kpis", err)
		return
	}

	o := s.options(r)
	render.JSON(w, r, dto.UsersResponse{
		Users:       dto.ConvertUserKPIs(e.Value, o),
		GeneratedAt: o.FormatTime(e.GeneratedAt),
	})
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health pings the data store.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		err = fmt.Errorf("%w: %w", gerr.ErrStoreUnavailable, err)
		slog.Default().ErrorContext(r.Context(), "health check failed",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, response.ErrServiceUnavailable(err))
		return
	}
	render.JSON(w, r, healthResponse{Status: "ok"})
}

// Warm recomputes the default-window payloads into the cache. The dashboard
// result seeds the per-family entries of the same window.
func (s *Server) Warm(ctx context.Context) error {
	tr := s.resolver.Resolve(ctx, period.Query{})
	e, err := cache.Refresh(ctx, s.cache, s.cache.Key(cache.FamilyDashboard, &tr),
		func(ctx context.Context) (*entity.DashboardKPIs, error) {
			return s.engine.Dashboard(ctx, tr)
		})
	if err != nil {
		return fmt.Errorf("can't warm dashboard: %w", err)
	}
	cache.Put(ctx, s.cache, s.cache.Key(cache.FamilyBusiness, &tr), e.Value.Business)
	cache.Put(ctx, s.cache, s.cache.Key(cache.FamilyProducts, nil), e.Value.Products)
	cache.Put(ctx, s.cache, s.cache.Key(cache.FamilyUsers, &tr), e.Value.Users)
	return nil
}
