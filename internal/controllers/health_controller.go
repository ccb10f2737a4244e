package controllers

import (
	"context"
	"net/http"

	"github.com/RogerGower/hsw-mvp/internal/app"
	"github.com/RogerGower/hsw-mvp/internal/dtos"
	"github.com/RogerGower/hsw-mvp/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Probe the schema build and the store in one go.
	if err := c.app.PrestartService.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("prestart-service unhealthy")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Service unhealthy",
			nil,
			err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
