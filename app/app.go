package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mamadou288/shop-api/config"
	httpapi "github.com/mamadou288/shop-api/internal/api/http"
	"github.com/mamadou288/shop-api/internal/apisrv/admin"
	"github.com/mamadou288/shop-api/internal/auth/jwt"
	"github.com/mamadou288/shop-api/internal/cache"
	"github.com/mamadou288/shop-api/internal/dependency"
	"github.com/mamadou288/shop-api/internal/store"
	"github.com/mamadou288/shop-api/internal/warmup"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	rc   dependency.ResultCache
	ww   *warmup.Worker
	c    *config.Config
	done chan struct{}
	once sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting shop analytics")

	ja, err := jwt.New(a.c.Auth)
	if err != nil {
		return fmt.Errorf("can't create jwt auth: %w", err)
	}

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to the database",
			slog.String("driver", a.c.DB.Driver),
			slog.String("err", err.Error()),
		)
		return err
	}
	a.db = db

	a.rc, err = cache.New(a.c.Cache)
	if err != nil {
		a.db.Close()
		return fmt.Errorf("can't open result cache: %w", err)
	}

	adminS, err := admin.New(a.db, cache.NewFacade(a.rc, a.c.Cache, nil), a.c.Analytics, nil)
	if err != nil {
		a.close()
		return fmt.Errorf("can't create analytics server: %w", err)
	}

	if a.c.Warmup.Enabled {
		a.ww = warmup.New(&a.c.Warmup, adminS)
		if err := a.ww.Start(ctx); err != nil {
			a.close()
			return fmt.Errorf("can't start warm-up worker: %w", err)
		}
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, adminS, ja); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		a.close()
		return err
	}

	go func() {
		<-a.hs.Done()
		a.stopOnce()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown",
				slog.String("err", err.Error()),
			)
		}
	}
	a.stopOnce()
}

func (a *App) stopOnce() {
	a.once.Do(func() {
		a.close()
		close(a.done)
	})
}

func (a *App) close() {
	if a.ww != nil {
		if err := a.ww.Stop(); err != nil {
			slog.Default().Error("can't stop warm-up worker",
				slog.String("err", err.Error()),
			)
		}
		a.ww = nil
	}
	if a.rc != nil {
		if err := a.rc.Close(); err != nil {
			slog.Default().Error("can't close result cache",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
