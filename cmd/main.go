package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/RogerGower/hsw-mvp/internal/app"
	"github.com/RogerGower/hsw-mvp/internal/config"
	"github.com/RogerGower/hsw-mvp/internal/controllers"
	"github.com/RogerGower/hsw-mvp/internal/routes"
	"github.com/RogerGower/hsw-mvp/internal/utils"
	"github.com/RogerGower/hsw-mvp/internal/web"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()
	defer cfg.Close()

	// 2) Core application (store, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application)
	prestartCtrl := controllers.NewPrestartController(application.PrestartService, application.Evaluator)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PrestartSchema, prestartCtrl.GetSchema).Methods(http.MethodGet)
	router.HandleFunc(routes.PrestartExample, prestartCtrl.GetExample).Methods(http.MethodGet)
	router.HandleFunc(routes.PrestartSubmit, prestartCtrl.Submit).Methods(http.MethodPost)
	router.HandleFunc(routes.PrestartEvaluate, prestartCtrl.Evaluate).Methods(http.MethodPost)
	router.HandleFunc(routes.Form, web.ServeForm).Methods(http.MethodGet)

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
