package dtos

// SubmitPrestartResponse is returned after a successful submission.
type SubmitPrestartResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Alert is one evaluator finding for a submitted checklist.
type Alert struct {
	Severity          string `json:"severity"` // info | warn | critical
	Area              string `json:"area"`
	Item              string `json:"item"`
	RecommendedAction string `json:"recommendedAction"`
}

// EvaluateResponse is the alert evaluator's reply, relayed unchanged.
type EvaluateResponse struct {
	Alerts []Alert `json:"alerts"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
