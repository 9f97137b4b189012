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

	"github.com/carverauto/fleetwatch/pkg/models"
)

type reportAck struct {
	Status string `json:"status"`
}

// @Summary Submit a status report
// @Description Accepts a device heartbeat with resource metrics, authenticated by API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {object} reportAck "Report accepted"
// @Failure 401 {object} models.ErrorResponse "Unknown API key"
// @Router /api/report/status [post]
func (s *APIServer) reportStatus(w http.ResponseWriter, r *http.Request) {
	var report models.StatusReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := s.core.ReportStatus(r.Context(), &report); err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.encodeJSONResponse(w, reportAck{Status: "ok"})
}

func (s *APIServer) reportError(w http.ResponseWriter, r *http.Request) {
	var report models.ErrorReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := s.core.ReportError(r.Context(), &report); err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.encodeJSONResponse(w, reportAck{Status: "ok"})
}
