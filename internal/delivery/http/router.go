package http

import (
	"net/http"

	"collegeevents/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/options", eventController.FilterOptions)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)

	// Submissions
	mux.HandleFunc("POST /events/submissions", eventController.SubmitEvent)

	mux.HandleFunc("GET /healthz", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
