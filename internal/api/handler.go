package api

import (
	"encoding/json"
	"net/http"

	"frauddash/app"
	"frauddash/internal"
	"frauddash/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves the dashboard's data as JSON
type Handler struct {
	service *app.DashboardService
	logger  *internal.Logger
	router  *chi.Mux
}

// NewHandler builds the chi router over service. Routes are relative, so
// the caller decides the mount prefix.
func NewHandler(service *app.DashboardService, logger *internal.Logger) *Handler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	h := &Handler{
		service: service,
		logger:  logger,
		router:  chi.NewRouter(),
	}
	h.setupRoutes()
	return h
}

func (h *Handler) setupRoutes() {
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.Recoverer)

	h.router.Get("/health", h.handleHealth)
	h.router.Get("/overview", h.handleOverview)
	h.router.Get("/features", h.handleFeatures)
	h.router.Get("/numerical/{feature}", h.handleNumerical)
	h.router.Get("/categorical/{feature}", h.handleCategorical)
	h.router.Get("/correlation", h.handleCorrelation)

	h.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.New("NOT_FOUND", "no such endpoint"), http.StatusNotFound)
	})
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeJSON encodes body before touching the response so an encoding
// failure still reaches the client as a 500 envelope.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		appErr := errors.InternalError("failed to encode response: " + err.Error())
		status = http.StatusInternalServerError
		data, _ = json.Marshal(ErrorResponse{Error: appErr.Error(), Code: appErr.Code})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

// writeError responds with err's code. A status of 0 derives it from the code.
func writeError(w http.ResponseWriter, err error, status int) {
	err = errors.FromDomain(err)
	if status == 0 {
		status = errors.HTTPStatus(err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: errors.GetCode(err)})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("%s %s: %v", r.Method, r.URL.Path, err)
	} else {
		h.logger.Debug("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeError(w, err, status)
}
