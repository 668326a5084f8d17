package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/mamadou288/shop-api/config"
	httpapi "github.com/mamadou288/shop-api/internal/api/http"
	"github.com/mamadou288/shop-api/internal/apisrv/admin"
	"github.com/mamadou288/shop-api/internal/auth/jwt"
	"github.com/mamadou288/shop-api/internal/cache"
	"github.com/mamadou288/shop-api/internal/store"
	"github.com/mamadou288/shop-api/internal/warmup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

func TestStartStop(t *testing.T) {
	port := freePort(t)
	cfg := &config.Config{
		DB: store.Config{
			Driver:      store.DriverSQLite,
			DSN:         filepath.Join(t.TempDir(), "shop.db"),
			Automigrate: true,
		},
		HTTP:      httpapi.Config{Address: "127.0.0.1", Port: port},
		Auth:      jwt.Config{JWTSecret: "secret"},
		Cache:     cache.Config{Backend: cache.BackendMemory},
		Analytics: admin.Config{Timezone: "UTC"},
		Warmup:    warmup.Config{Enabled: true, WorkerInterval: time.Minute},
	}

	ctx := context.Background()
	a := New(cfg)
	require.NoError(t, a.Start(ctx))

	ja, err := jwt.New(cfg.Auth)
	require.NoError(t, err)
	tok, err := jwt.NewAdminToken(ja, time.Hour, "ops")
	require.NoError(t, err)

	base := "http://127.0.0.1:" + port
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	req, err := http.NewRequest(http.MethodGet, base+"/api/admin/analytics/dashboard?period=30d", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"total_users":0`)

	a.Stop(ctx)
	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestStartWithoutSecret(t *testing.T) {
	a := New(&config.Config{})
	assert.Error(t, a.Start(context.Background()))
}
