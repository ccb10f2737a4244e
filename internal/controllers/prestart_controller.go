package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RogerGower/hsw-mvp/internal/dtos"
	"github.com/RogerGower/hsw-mvp/internal/models"
	"github.com/RogerGower/hsw-mvp/internal/services"
	"github.com/RogerGower/hsw-mvp/internal/utils"
)

type PrestartController struct {
	svc       services.PrestartService
	evaluator services.EvaluatorClient
}

func NewPrestartController(s services.PrestartService, e services.EvaluatorClient) *PrestartController {
	return &PrestartController{svc: s, evaluator: e}
}

// -----------------------------------------------------------------------------
// GET /prestart/schema
// -----------------------------------------------------------------------------
func (c *PrestartController) GetSchema(w http.ResponseWriter, r *http.Request) {
	doc, err := c.svc.Schema(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeSchemaUnavailable,
			"Checklist schema is unavailable", nil, err,
		)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// -----------------------------------------------------------------------------
// GET /prestart/example
// -----------------------------------------------------------------------------
func (c *PrestartController) GetExample(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.svc.Example(r.Context()))
}

// -----------------------------------------------------------------------------
// POST /prestart
// -----------------------------------------------------------------------------
func (c *PrestartController) Submit(w http.ResponseWriter, r *http.Request) {
	var candidate models.Prestart
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		// A wrong-typed field (string where a number belongs) is a
		// field-addressable structural error, not an opaque bad payload.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			utils.RespondErrorWithCode(
				w, http.StatusUnprocessableEntity, utils.ErrCodeValidation,
				"Submission failed validation",
				[]models.FieldError{{
					Field:   typeErr.Field,
					Kind:    models.KindStructural,
					Message: "expected " + typeErr.Type.String() + ", got " + typeErr.Value,
				}},
				err,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}

	if fieldErrs := models.Validate(&candidate); len(fieldErrs) > 0 {
		code := utils.ErrCodeValidation
		for _, fe := range fieldErrs {
			if fe.Kind == models.KindEmptyChecklist {
				code = utils.ErrCodeEmptyChecklist
				break
			}
		}
		utils.RespondErrorWithCode(
			w, http.StatusUnprocessableEntity, code,
			"Submission failed validation", fieldErrs,
		)
		return
	}

	count, err := c.svc.Submit(r.Context(), &candidate)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.SubmitPrestartResponse{
		Status: "stored",
		Count:  count,
	})
}

// -----------------------------------------------------------------------------
// POST /prestart/evaluate
// -----------------------------------------------------------------------------
func (c *PrestartController) Evaluate(w http.ResponseWriter, r *http.Request) {
	var candidate models.Prestart
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}

	result, err := c.evaluator.Evaluate(r.Context(), &candidate)
	if err != nil {
		// Absence of the evaluator is an informational state for clients,
		// never a submission failure.
		utils.RespondErrorWithCode(
			w, http.StatusServiceUnavailable, utils.ErrCodeExternalServiceFailure,
			"No evaluation available", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}
