// Package warmup keeps the default analytics window in the result cache.
package warmup

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Config holds configuration for the cache warm-up worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 10 * time.Minute,
	}
}

// Warmer recomputes cached payloads.
type Warmer interface {
	Warm(ctx context.Context) error
}

// Worker calls Warm once on start and then every WorkerInterval.
type Worker struct {
	w    Warmer
	c    *Config
	ctx  context.Context
	stop context.CancelFunc
	done chan struct{}
}

// New creates a new warm-up worker.
func New(c *Config, w Warmer) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = DefaultConfig().WorkerInterval
	}
	return &Worker{
		w: w,
		c: c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("warm-up worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker and waits for an in-flight warm-up to return.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("warm-up worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	<-w.done
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	w.warm(ctx)
	for {
		select {
		case <-ticker.C:
			w.warm(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) warm(ctx context.Context) {
	start := time.Now()
	if err := w.w.Warm(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't warm analytics cache",
			slog.String("err", err.Error()),
		)
		return
	}
	slog.Default().InfoContext(ctx, "warmed analytics cache",
		slog.Duration("took", time.Since(start)),
	)
}
