/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package db persists devices and their reported samples in Postgres.
package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/fleetwatch/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/carverauto/fleetwatch/pkg/db Service

// ErrorFilter narrows global error listings. Zero values mean "no filter".
type ErrorFilter struct {
	DeviceID *uuid.UUID
	Level    string
	Limit    int
}

// Service represents all database operations for the collector.
type Service interface {
	Close()

	// Device registry operations.

	CreateDevice(ctx context.Context, device *models.Device) error
	GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error)
	GetDeviceByAPIKey(ctx context.Context, apiKey string) (*models.Device, error)
	ListDevices(ctx context.Context) ([]models.Device, error)
	UpdateDevice(ctx context.Context, id uuid.UUID, patch *models.DeviceUpdateRequest) (*models.Device, error)
	DeleteDevice(ctx context.Context, id uuid.UUID) error
	MarkDeviceSeen(ctx context.Context, id uuid.UUID, publicIP string, seenAt time.Time) error
	MarkDeviceOffline(ctx context.Context, id uuid.UUID) error

	// Sample store operations.

	InsertStatusSample(ctx context.Context, sample *models.StatusSample) error
	InsertErrorSample(ctx context.Context, sample *models.ErrorSample) error
	ListStatusSamples(ctx context.Context) ([]models.StatusSample, error)
	GetStatusSamplesSince(ctx context.Context, since time.Time) ([]models.StatusSample, error)
	GetStatusSamplesBetween(ctx context.Context, start, end time.Time) ([]models.StatusSample, error)
	GetDeviceStatusSince(ctx context.Context, deviceID uuid.UUID, since time.Time) ([]models.StatusSample, error)
	GetDeviceErrors(ctx context.Context, deviceID uuid.UUID, limit int) ([]models.ErrorSample, error)
	ListErrorSamples(ctx context.Context, filter ErrorFilter) ([]models.ErrorSample, error)
	CountErrorSamples(ctx context.Context) (int64, error)
}
