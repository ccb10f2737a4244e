package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RogerGower/hsw-mvp/internal/dtos"
	"github.com/RogerGower/hsw-mvp/internal/models"
	"github.com/RogerGower/hsw-mvp/internal/utils"
)

func TestEvaluatorDisabledWhenUnconfigured(t *testing.T) {
	client := NewEvaluatorClient("")

	_, err := client.Evaluate(context.Background(), models.Example())
	require.ErrorIs(t, err, utils.ErrEvaluatorUnavailable)
}

func TestEvaluatorRelaysAlerts(t *testing.T) {
	var (
		gotMethod    string
		gotCandidate models.Prestart
		decodeErr    error
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler runs off the test goroutine; record and assert after.
		gotMethod = r.Method
		decodeErr = json.NewDecoder(r.Body).Decode(&gotCandidate)

		_ = json.NewEncoder(w).Encode(dtos.EvaluateResponse{Alerts: []dtos.Alert{{
			Severity:          "warn",
			Area:              "Vehicle exterior",
			Item:              "Mudguards / Flaps",
			RecommendedAction: "Replace before next shift",
		}}})
	}))
	defer srv.Close()

	client := NewEvaluatorClient(srv.URL)
	out, err := client.Evaluate(context.Background(), models.Example())
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	require.Equal(t, "warn", out.Alerts[0].Severity)

	// The evaluator must have received the candidate untouched.
	require.Equal(t, http.MethodPost, gotMethod)
	require.NoError(t, decodeErr)
	require.Equal(t, "TRK-4502", gotCandidate.GeneralInfo.PlantNumber)
}

func TestEvaluatorDegradesGracefully(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewEvaluatorClient(srv.URL).Evaluate(context.Background(), models.Example())
		require.ErrorIs(t, err, utils.ErrEvaluatorUnavailable)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // dead before use

		_, err := NewEvaluatorClient(srv.URL).Evaluate(context.Background(), models.Example())
		require.ErrorIs(t, err, utils.ErrEvaluatorUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, err := NewEvaluatorClient(srv.URL).Evaluate(context.Background(), models.Example())
		require.ErrorIs(t, err, utils.ErrEvaluatorUnavailable)
	})
}

func TestEvaluatorNormalizesNullAlerts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"alerts": null}`))
	}))
	defer srv.Close()

	out, err := NewEvaluatorClient(srv.URL).Evaluate(context.Background(), models.Example())
	require.NoError(t, err)
	require.NotNil(t, out.Alerts)
	require.Empty(t, out.Alerts)
}
