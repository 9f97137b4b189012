/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package api provides the HTTP API server for FleetWatch
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carverauto/fleetwatch/pkg/core"
	"github.com/carverauto/fleetwatch/pkg/db"
	fwHttp "github.com/carverauto/fleetwatch/pkg/http"
	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second

	defaultWindowHours = 24
	defaultErrorLimit  = 100
)

// APIServer exposes the collector over HTTP.
type APIServer struct {
	router     *mux.Router
	core       *core.Server
	corsConfig models.CORSConfig
	logger     logger.Logger
	httpServer *http.Server
}

// NewAPIServer creates a new API server instance around the service layer.
func NewAPIServer(coreServer *core.Server, options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router: mux.NewRouter(),
		core:   coreServer,
		logger: logger.NewTestLogger(),
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithLogger sets the logger for the API server
func WithLogger(log logger.Logger) func(*APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

// WithCORSConfig sets the allowed CORS origins for the API server
func WithCORSConfig(config models.CORSConfig) func(*APIServer) {
	return func(server *APIServer) {
		server.corsConfig = config
	}
}

// setupRoutes configures the HTTP routes for the API server.
func (s *APIServer) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return fwHttp.CommonMiddleware(next, s.corsConfig, s.logger)
	})

	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/devices", s.createDevice).Methods(http.MethodPost)
	api.HandleFunc("/devices", s.listDevices).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}", s.getDevice).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}", s.updateDevice).Methods(http.MethodPut)
	api.HandleFunc("/devices/{id}", s.deleteDevice).Methods(http.MethodDelete)
	api.HandleFunc("/devices/{id}/status", s.getDeviceStatus).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}/errors", s.getDeviceErrors).Methods(http.MethodGet)

	api.HandleFunc("/report/status", s.reportStatus).Methods(http.MethodPost)
	api.HandleFunc("/report/error", s.reportError).Methods(http.MethodPost)

	api.HandleFunc("/errors", s.listErrors).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.getStats).Methods(http.MethodGet)
	api.HandleFunc("/trends", s.getTrends).Methods(http.MethodGet)
}

// Router returns the server's handler, mainly for tests.
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Start serves the API until the listener fails or Shutdown is called.
func (s *APIServer) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	s.logger.Info().Str("addr", addr).Msg("API server listening")

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// encodeJSONResponse encodes a response as JSON
func (s *APIServer) encodeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		// Fallback in case encoding fails
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeServiceError translates service-layer sentinels into HTTP statuses.
func (s *APIServer) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrInvalidAPIKey):
		writeError(w, "Invalid API key", http.StatusUnauthorized)
	case errors.Is(err, db.ErrDeviceNotFound):
		writeError(w, "Device not found", http.StatusNotFound)
	case errors.Is(err, db.ErrDuplicateAPIKey):
		writeError(w, "API key already registered", http.StatusConflict)
	case errors.Is(err, db.ErrDeviceNameMissing):
		writeError(w, "Device name is required", http.StatusBadRequest)
	default:
		s.logger.Error().Err(err).Msg("Request failed")
		writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}
