package warmup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWarmer struct {
	calls atomic.Int32
	err   error
}

func (c *countingWarmer) Warm(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestWorkerWarmsOnStartAndTick(t *testing.T) {
	cw := &countingWarmer{}
	w := New(&Config{WorkerInterval: 20 * time.Millisecond}, cw)

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))

	assert.Eventually(t, func() bool { return cw.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())
	n := cw.calls.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, n, cw.calls.Load(), "no warm-up after stop")

	assert.Error(t, w.Stop())
}

func TestWorkerKeepsGoingOnError(t *testing.T) {
	cw := &countingWarmer{err: errors.New("db down")}
	w := New(&Config{WorkerInterval: 10 * time.Millisecond}, cw)

	require.NoError(t, w.Start(context.Background()))
	assert.Eventually(t, func() bool { return cw.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, w.Stop())
}

func TestDefaults(t *testing.T) {
	w := New(nil, &countingWarmer{})
	assert.Equal(t, 10*time.Minute, w.c.WorkerInterval)
	assert.False(t, w.c.Enabled)

	w = New(&Config{Enabled: true}, &countingWarmer{})
	assert.Equal(t, 10*time.Minute, w.c.WorkerInterval)
}
