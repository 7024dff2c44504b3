package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type fakeScreen struct {
	started bool
	err     error
}

func (f *fakeScreen) Run(_ context.Context, onStart func(refresh service.Callback[[]models.Product])) error {
	onStart(service.CallbackFuncs[[]models.Product]{})
	f.started = true
	return f.err
}

func newTestConfig(t *testing.T, serverURL string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "stock.db")}},
		Workers: config.ClientWorkers{SyncInterval: time.Hour},
	}
}

func TestNewApp_EmptyAdapterAddress(t *testing.T) {
	cfg := newTestConfig(t, "")

	_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	require.Error(t, err)
}

func TestApp_Run_ReturnsScreenErrorAfterShutdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	app, err := NewApp(context.Background(), newTestConfig(t, srv.URL), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	screen := &fakeScreen{err: errors.New("terminal lost")}
	app.screen = screen

	err = app.Run()

	assert.True(t, screen.started)
	assert.EqualError(t, err, "terminal lost")
	assert.Panics(t, func() {
		app.services.Products.List(context.Background(), nil)
	}, "products must be closed once Run returns")
}
