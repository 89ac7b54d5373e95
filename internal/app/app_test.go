package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Port = 8080
	srv := newHttpServer(logger.NewNop(), cfg)
	assert.Equal(t, ":8080", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestMigrateSkipsWithoutPostgres(t *testing.T) {
	require.NoError(t, migrate(&config.Config{}, logger.NewNop()))
}
