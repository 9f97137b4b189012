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
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/fleetwatch/pkg/db"
	"github.com/carverauto/fleetwatch/pkg/models"
)

var hexKeyPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestRegisterDeviceGeneratesKey(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	srv, mockDB := newTestServer(t, at)

	var stored *models.Device

	mockDB.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, device *models.Device) error {
			stored = device
			return nil
		})

	device, err := srv.RegisterDevice(context.Background(), &models.DeviceCreateRequest{Name: "edge-1"})
	require.NoError(t, err)
	require.NotNil(t, device)

	assert.Same(t, stored, device)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, "edge-1", device.Name)
	assert.Equal(t, "unknown", device.DeviceType)
	assert.Regexp(t, hexKeyPattern, device.APIKey)
	assert.False(t, device.IsOnline)
	assert.Nil(t, device.LastSeen)
	assert.Equal(t, at, device.CreatedAt)
}

func TestRegisterDeviceKeysAreUnique(t *testing.T) {
	srv, mockDB := newTestServer(t, time.Now())

	mockDB.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := srv.RegisterDevice(context.Background(), &models.DeviceCreateRequest{Name: "a"})
	require.NoError(t, err)

	second, err := srv.RegisterDevice(context.Background(), &models.DeviceCreateRequest{Name: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, first.APIKey, second.APIKey)
}

func TestRegisterDeviceKeepsSuppliedKey(t *testing.T) {
	srv, mockDB := newTestServer(t, time.Now())

	mockDB.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(nil)

	device, err := srv.RegisterDevice(context.Background(), &models.DeviceCreateRequest{
		Name:       "edge-2",
		DeviceType: "kiosk",
		APIKey:     "preprovisioned",
	})
	require.NoError(t, err)

	assert.Equal(t, "preprovisioned", device.APIKey)
	assert.Equal(t, "kiosk", device.DeviceType)
}

func TestRegisterDeviceRequiresName(t *testing.T) {
	srv, _ := newTestServer(t, time.Now())

	_, err := srv.RegisterDevice(context.Background(), &models.DeviceCreateRequest{Name: "   "})
	require.ErrorIs(t, err, db.ErrDeviceNameMissing)
}

func TestRegisterDeviceDuplicateKeyPropagates(t *testing.T) {
	srv, mockDB := newTestServer(t, time.Now())

	mockDB.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(db.ErrDuplicateAPIKey)

	_, err := srv.RegisterDevice(context.Background(), &models.DeviceCreateRequest{
		Name:   "edge-3",
		APIKey: "taken",
	})
	require.ErrorIs(t, err, db.ErrDuplicateAPIKey)
}

func TestUpdateDeviceNoChangesReturnsCurrent(t *testing.T) {
	srv, mockDB := newTestServer(t, time.Now())

	id := uuid.New()
	current := &models.Device{ID: id, Name: "edge-1"}

	mockDB.EXPECT().GetDevice(gomock.Any(), id).Return(current, nil)

	device, err := srv.UpdateDevice(context.Background(), id, &models.DeviceUpdateRequest{})
	require.NoError(t, err)
	assert.Same(t, current, device)
}
