package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RogerGower/hsw-mvp/internal/app"
	"github.com/RogerGower/hsw-mvp/internal/config"
	"github.com/RogerGower/hsw-mvp/internal/dtos"
	"github.com/RogerGower/hsw-mvp/internal/services"
	"github.com/RogerGower/hsw-mvp/internal/store"
)

func TestHealthCheckHealthy(t *testing.T) {
	s := store.NewMemoryStore()
	application := &app.App{
		Config:          &config.Config{AppName: "prestart-service"},
		Store:           s,
		PrestartService: services.NewPrestartService(s),
		Evaluator:       services.NewEvaluatorClient(""),
	}

	ctrl := NewHealthController(application)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ctrl.HealthCheckHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.HealthCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "OK", resp.Status)
}
