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

package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carverauto/fleetwatch/pkg/models"
)

const pgUniqueViolation = "23505"

const deviceSelect = `
SELECT
	id,
	name,
	device_type,
	api_key,
	public_ip,
	is_online,
	last_seen,
	created_at,
	notes
FROM devices`

// CreateDevice inserts a new device row. The caller supplies the ID and API
// key; a unique-index collision on api_key maps to ErrDuplicateAPIKey.
func (db *DB) CreateDevice(ctx context.Context, device *models.Device) error {
	if device == nil {
		return ErrDeviceNil
	}

	if strings.TrimSpace(device.Name) == "" {
		return ErrDeviceNameMissing
	}

	_, err := db.pool.Exec(ctx, `
INSERT INTO devices (id, name, device_type, api_key, public_ip, is_online, last_seen, created_at, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		device.ID, device.Name, device.DeviceType, device.APIKey, device.PublicIP,
		device.IsOnline, device.LastSeen, device.CreatedAt, device.Notes)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateAPIKey
		}

		return fmt.Errorf("insert device: %w", err)
	}

	return nil
}

// GetDevice fetches a device by ID.
func (db *DB) GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, deviceSelect+` WHERE id = $1`, id)
	return scanDevice(row)
}

// GetDeviceByAPIKey resolves the ingestion credential. This is the hottest
// read path; api_key carries a unique index.
func (db *DB) GetDeviceByAPIKey(ctx context.Context, apiKey string) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, deviceSelect+` WHERE api_key = $1`, apiKey)

	device, err := scanDevice(row)
	if errors.Is(err, ErrDeviceNotFound) {
		return nil, ErrInvalidAPIKey
	}

	return device, err
}

// ListDevices returns every registered device ordered by creation time.
func (db *DB) ListDevices(ctx context.Context) ([]models.Device, error) {
	rows, err := db.pool.Query(ctx, deviceSelect+` ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0)

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}

		devices = append(devices, *device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate devices: %w", err)
	}

	return devices, nil
}

// UpdateDevice applies a partial update and returns the updated record.
// Fields left nil in the patch are not touched.
func (db *DB) UpdateDevice(ctx context.Context, id uuid.UUID, patch *models.DeviceUpdateRequest) (*models.Device, error) {
	if patch == nil || !patch.HasChanges() {
		return nil, ErrNoUpdateFields
	}

	assignments := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.DeviceType != nil {
		appendSet("device_type", *patch.DeviceType)
	}
	if patch.PublicIP != nil {
		appendSet("public_ip", *patch.PublicIP)
	}
	if patch.Notes != nil {
		appendSet("notes", *patch.Notes)
	}

	args = append(args, id)

	query := fmt.Sprintf(`UPDATE devices SET %s WHERE id = $%d`,
		strings.Join(assignments, ", "), len(args))

	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update device: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrDeviceNotFound
	}

	return db.GetDevice(ctx, id)
}

// DeleteDevice removes the device row. Samples referencing the device are
// left in place; the device id is a lookup key, not a foreign key.
func (db *DB) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// MarkDeviceSeen flips the device online and records the contact time. The
// public IP is only overwritten when the report carried a non-empty value.
// Single-statement update, so concurrent sweeps cannot produce lost writes.
func (db *DB) MarkDeviceSeen(ctx context.Context, id uuid.UUID, publicIP string, seenAt time.Time) error {
	tag, err := db.pool.Exec(ctx, `
UPDATE devices
SET is_online = TRUE,
    last_seen = $2,
    public_ip = CASE WHEN $3 <> '' THEN $3 ELSE public_ip END
WHERE id = $1`, id, seenAt.UTC(), publicIP)
	if err != nil {
		return fmt.Errorf("mark device seen: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// MarkDeviceOffline clears the online flag. Used by the liveness sweep;
// last-write-wins against a concurrent MarkDeviceSeen is acceptable.
func (db *DB) MarkDeviceOffline(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `UPDATE devices SET is_online = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark device offline: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

func scanDevice(row pgx.Row) (*models.Device, error) {
	var device models.Device

	err := row.Scan(
		&device.ID,
		&device.Name,
		&device.DeviceType,
		&device.APIKey,
		&device.PublicIP,
		&device.IsOnline,
		&device.LastSeen,
		&device.CreatedAt,
		&device.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}

		return nil, fmt.Errorf("scan device: %w", err)
	}

	return &device, nil
}
