package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires the public routes and the common middleware.
func NewRouter(tryOnHandler *TryOnHandler, notificationHandler *NotificationHandler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))

	r.HandleFunc("/health", tryOnHandler.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/generate", tryOnHandler.HandleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/api/send-email", notificationHandler.HandleSendEmail).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
