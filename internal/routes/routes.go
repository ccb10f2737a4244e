package routes

const (
	// Health
	Health = "/health"

	// Prestart endpoints
	PrestartSchema   = "/prestart/schema"
	PrestartExample  = "/prestart/example"
	PrestartSubmit   = "/prestart"
	PrestartEvaluate = "/prestart/evaluate"

	// Embedded form client
	Form = "/form"
)
