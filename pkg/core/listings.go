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

package core

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/fleetwatch/pkg/db"
	"github.com/carverauto/fleetwatch/pkg/models"
)

// GetDeviceStatus returns a device's status samples within the lookback
// window, newest first. Unknown devices yield ErrDeviceNotFound.
func (s *Server) GetDeviceStatus(ctx context.Context, deviceID uuid.UUID, window time.Duration) ([]models.StatusSample, error) {
	if _, err := s.DB.GetDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	since := s.now().UTC().Add(-window)

	return s.DB.GetDeviceStatusSince(ctx, deviceID, since)
}

// GetDeviceErrors returns a device's most recent error samples.
func (s *Server) GetDeviceErrors(ctx context.Context, deviceID uuid.UUID, limit int) ([]models.ErrorSample, error) {
	if _, err := s.DB.GetDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	return s.DB.GetDeviceErrors(ctx, deviceID, limit)
}

// ListErrors returns recent error samples across the fleet, optionally
// narrowed by device and level.
func (s *Server) ListErrors(ctx context.Context, filter db.ErrorFilter) ([]models.ErrorSample, error) {
	return s.DB.ListErrorSamples(ctx, filter)
}
