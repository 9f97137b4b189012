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
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/fleetwatch/pkg/db"
	"github.com/carverauto/fleetwatch/pkg/models"
)

func (s *APIServer) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.core.GetFleetStats(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.encodeJSONResponse(w, stats)
}

func (s *APIServer) getTrends(w http.ResponseWriter, r *http.Request) {
	hours, err := parseHoursParam(r.URL.Query())
	if err != nil {
		writeError(w, "Invalid hours parameter", http.StatusBadRequest)
		return
	}

	points, err := s.core.GetTrends(r.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if points == nil {
		points = []models.TrendPoint{}
	}

	s.encodeJSONResponse(w, points)
}

func (s *APIServer) getDeviceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDFromRequest(w, r)
	if !ok {
		return
	}

	hours, err := parseHoursParam(r.URL.Query())
	if err != nil {
		writeError(w, "Invalid hours parameter", http.StatusBadRequest)
		return
	}

	samples, err := s.core.GetDeviceStatus(r.Context(), id, time.Duration(hours)*time.Hour)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if samples == nil {
		samples = []models.StatusSample{}
	}

	s.encodeJSONResponse(w, samples)
}

func (s *APIServer) getDeviceErrors(w http.ResponseWriter, r *http.Request) {
	id, ok := deviceIDFromRequest(w, r)
	if !ok {
		return
	}

	limit, err := parseLimitParam(r.URL.Query())
	if err != nil {
		writeError(w, "Invalid limit parameter", http.StatusBadRequest)
		return
	}

	samples, err := s.core.GetDeviceErrors(r.Context(), id, limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if samples == nil {
		samples = []models.ErrorSample{}
	}

	s.encodeJSONResponse(w, samples)
}

func (s *APIServer) listErrors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := parseLimitParam(query)
	if err != nil {
		writeError(w, "Invalid limit parameter", http.StatusBadRequest)
		return
	}

	filter := db.ErrorFilter{
		Level: query.Get("level"),
		Limit: limit,
	}

	if raw := query.Get("device_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, "Invalid device_id parameter", http.StatusBadRequest)
			return
		}

		filter.DeviceID = &id
	}

	samples, err := s.core.ListErrors(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if samples == nil {
		samples = []models.ErrorSample{}
	}

	s.encodeJSONResponse(w, samples)
}

func parseHoursParam(query url.Values) (int, error) {
	raw := query.Get("hours")
	if raw == "" {
		return defaultWindowHours, nil
	}

	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return 0, strconv.ErrSyntax
	}

	return hours, nil
}

func parseLimitParam(query url.Values) (int, error) {
	raw := query.Get("limit")
	if raw == "" {
		return defaultErrorLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, strconv.ErrSyntax
	}

	return limit, nil
}
