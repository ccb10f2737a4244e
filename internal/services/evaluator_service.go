package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RogerGower/hsw-mvp/internal/dtos"
	"github.com/RogerGower/hsw-mvp/internal/models"
	"github.com/RogerGower/hsw-mvp/internal/utils"
)

const evaluatorTimeout = 10 * time.Second

// EvaluatorClient is the optional external alert evaluator. The service
// queries it optimistically: when none is configured, or the configured
// one errors, callers get utils.ErrEvaluatorUnavailable and must treat it
// as "no evaluation available", never as a submission failure.
type EvaluatorClient interface {
	Evaluate(ctx context.Context, rec *models.Prestart) (*dtos.EvaluateResponse, error)
}

// NewEvaluatorClient wires the evaluator endpoint, or a disabled stand-in
// when no URL is configured.
func NewEvaluatorClient(endpointURL string) EvaluatorClient {
	if endpointURL == "" {
		return disabledEvaluator{}
	}
	return &httpEvaluator{
		url:    endpointURL,
		client: &http.Client{Timeout: evaluatorTimeout},
	}
}

// ------------------------------------------------------------------
// disabled stand-in
// ------------------------------------------------------------------

type disabledEvaluator struct{}

func (disabledEvaluator) Evaluate(context.Context, *models.Prestart) (*dtos.EvaluateResponse, error) {
	return nil, utils.ErrEvaluatorUnavailable
}

// ------------------------------------------------------------------
// HTTP implementation
// ------------------------------------------------------------------

type httpEvaluator struct {
	url    string
	client *http.Client
}

func (e *httpEvaluator) Evaluate(ctx context.Context, rec *models.Prestart) (*dtos.EvaluateResponse, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal candidate: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build evaluator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		utils.Logger.WithError(err).Warn("Evaluator unreachable")
		return nil, utils.ErrEvaluatorUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.Logger.Warnf("Evaluator returned status %d", resp.StatusCode)
		return nil, utils.ErrEvaluatorUnavailable
	}

	var out dtos.EvaluateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		utils.Logger.WithError(err).Warn("Evaluator returned malformed body")
		return nil, utils.ErrEvaluatorUnavailable
	}
	if out.Alerts == nil {
		out.Alerts = []dtos.Alert{}
	}
	return &out, nil
}
