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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carverauto/fleetwatch/pkg/db"
	"github.com/carverauto/fleetwatch/pkg/models"
)

const (
	defaultDeviceType = "unknown"
	apiKeyBytes       = 32
)

// RegisterDevice creates a device from the request, generating a random API
// key when none was supplied. The returned device includes the key; it is
// the only time a generated key is handed out.
func (s *Server) RegisterDevice(ctx context.Context, req *models.DeviceCreateRequest) (*models.Device, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, db.ErrDeviceNameMissing
	}

	deviceType := strings.TrimSpace(req.DeviceType)
	if deviceType == "" {
		deviceType = defaultDeviceType
	}

	apiKey := req.APIKey
	if apiKey == "" {
		generated, err := generateAPIKey()
		if err != nil {
			return nil, err
		}

		apiKey = generated
	}

	device := &models.Device{
		ID:         uuid.New(),
		Name:       name,
		DeviceType: deviceType,
		APIKey:     apiKey,
		PublicIP:   req.PublicIP,
		IsOnline:   false,
		CreatedAt:  s.now().UTC(),
		Notes:      req.Notes,
	}

	if err := s.DB.CreateDevice(ctx, device); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("device_id", device.ID.String()).
		Str("name", device.Name).
		Str("device_type", device.DeviceType).
		Msg("Device registered")

	return device, nil
}

// GetDevice looks up a single device by id.
func (s *Server) GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	return s.DB.GetDevice(ctx, id)
}

// ListDevices returns every registered device in creation order.
func (s *Server) ListDevices(ctx context.Context) ([]models.Device, error) {
	return s.DB.ListDevices(ctx)
}

// UpdateDevice applies a partial update. The API key is immutable and not
// part of the patch.
func (s *Server) UpdateDevice(ctx context.Context, id uuid.UUID, patch *models.DeviceUpdateRequest) (*models.Device, error) {
	if !patch.HasChanges() {
		return s.DB.GetDevice(ctx, id)
	}

	return s.DB.UpdateDevice(ctx, id, patch)
}

// DeleteDevice removes a device. Its stored samples are left in place.
func (s *Server) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	if err := s.DB.DeleteDevice(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("device_id", id.String()).Msg("Device deleted")

	return nil
}

func generateAPIKey() (string, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
