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

package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/carverauto/fleetwatch/pkg/models"
)

// @Summary Register a device
// @Description Registers a new device and returns it, including the generated API key.
// @Tags Devices
// @Accept json
// @Produce json
// @Success 200 {object} models.Device "Registered device"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Duplicate API key"
// @Router /api/devices [post]
func (s *APIServer) createDevice(w http.ResponseWriter, r *http.Request) {
	var req models.DeviceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	device, err := s.core.RegisterDevice(r.Context(), &req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.encodeJSONResponse(w, device)
}

func (s *APIServer) listDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.core.ListDevices(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if devices == nil {
		devices = []models.Device{}
	}

	s.encodeJSONResponse(w, devices)
}

func (s *APIServer) getDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDFromRequest(w, r)
	if !ok {
		return
	}

	device, err := s.core.GetDevice(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.encodeJSONResponse(w, device)
}

func (s *APIServer) updateDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDFromRequest(w, r)
	if !ok {
		return
	}

	var patch models.DeviceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	device, err := s.core.UpdateDevice(r.Context(), id, &patch)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.encodeJSONResponse(w, device)
}

func (s *APIServer) deleteDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := s.core.DeleteDevice(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.encodeJSONResponse(w, map[string]string{"status": "deleted"})
}

// deviceIDFromRequest parses the {id} path variable, writing a 400 response
// on malformed input.
func deviceIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]

	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, "Invalid device id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}
