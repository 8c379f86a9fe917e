package http

import (
	"net/http"

	"medical-profile-qr/internal/delivery/http/handler"
	"medical-profile-qr/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	profileHandler    *handler.ProfileHandler
	profileAPIHandler *handler.ProfileAPIHandler
	requestLogger     *middleware.RequestLoggerMiddleware
	recovery          *middleware.RecoveryMiddleware
	cors              *middleware.CORSMiddleware
	qrDir             string
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	profileAPIHandler *handler.ProfileAPIHandler,
	requestLogger *middleware.RequestLoggerMiddleware,
	recovery *middleware.RecoveryMiddleware,
	cors *middleware.CORSMiddleware,
	qrDir string,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		profileHandler:    profileHandler,
		profileAPIHandler: profileAPIHandler,
		requestLogger:     requestLogger,
		recovery:          recovery,
		cors:              cors,
		qrDir:             qrDir,
	}
}

func (r *Router) Setup() *mux.Router {
	// HTML pages
	r.router.HandleFunc("/", r.profileHandler.ShowCreateForm).Methods(http.MethodGet)
	r.router.HandleFunc("/", r.profileHandler.CreateProfile).Methods(http.MethodPost)
	r.router.HandleFunc("/profile/{username}", r.profileHandler.ViewProfile).Methods(http.MethodGet)
	r.router.HandleFunc("/edit/{username}", r.profileHandler.ShowEditForm).Methods(http.MethodGet)
	r.router.HandleFunc("/edit/{username}", r.profileHandler.UpdateCheckup).Methods(http.MethodPost)

	// Generated QR artifacts
	r.router.PathPrefix("/static/qr/").Handler(
		http.StripPrefix("/static/qr/", http.FileServer(http.Dir(r.qrDir))),
	).Methods(http.MethodGet)

	// JSON API
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.cors.Handle)
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{username}", r.profileAPIHandler.GetProfile).Methods(http.MethodGet)

	// Unmatched routes get the rendered 404 page. mux does not run Use
	// middleware for the NotFoundHandler, so the chain is applied here.
	r.router.NotFoundHandler = r.requestLogger.Handle(
		r.recovery.Handle(http.HandlerFunc(r.profileHandler.NotFoundPage)),
	)

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.recovery.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
