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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/carverauto/fleetwatch/pkg/models"
)

const defaultErrorListLimit = 100

const statusSampleSelect = `
SELECT
	device_id,
	timestamp,
	agent_version,
	agent_status,
	runtime,
	cpu_percent,
	memory_percent,
	memory_total,
	memory_used,
	disk_percent,
	disk_total,
	disk_used,
	upload_speed,
	download_speed,
	context_tokens,
	total_tokens
FROM status_samples`

const errorSampleSelect = `
SELECT
	device_id,
	timestamp,
	level,
	message,
	source,
	stack_trace
FROM error_samples`

// InsertStatusSample appends one immutable status sample.
func (db *DB) InsertStatusSample(ctx context.Context, sample *models.StatusSample) error {
	if sample == nil {
		return ErrStatusSampleNil
	}

	_, err := db.pool.Exec(ctx, `
INSERT INTO status_samples (
	device_id, timestamp, agent_version, agent_status, runtime,
	cpu_percent, memory_percent, memory_total, memory_used,
	disk_percent, disk_total, disk_used,
	upload_speed, download_speed, context_tokens, total_tokens)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		sample.DeviceID, sample.Timestamp.UTC(), sample.AgentVersion, sample.AgentStatus, sample.Runtime,
		sample.CPUPercent, sample.MemoryPercent, sample.MemoryTotal, sample.MemoryUsed,
		sample.DiskPercent, sample.DiskTotal, sample.DiskUsed,
		sample.UploadSpeed, sample.DownloadSpeed, sample.ContextTokens, sample.TotalTokens)
	if err != nil {
		return fmt.Errorf("insert status sample: %w", err)
	}

	return nil
}

// InsertErrorSample appends one immutable error sample.
func (db *DB) InsertErrorSample(ctx context.Context, sample *models.ErrorSample) error {
	if sample == nil {
		return ErrErrorSampleNil
	}

	_, err := db.pool.Exec(ctx, `
INSERT INTO error_samples (device_id, timestamp, level, message, source, stack_trace)
VALUES ($1, $2, $3, $4, $5, $6)`,
		sample.DeviceID, sample.Timestamp.UTC(), sample.Level, sample.Message, sample.Source, sample.StackTrace)
	if err != nil {
		return fmt.Errorf("insert error sample: %w", err)
	}

	return nil
}

// ListStatusSamples returns every status sample in arrival order. The
// aggregator relies on arrival order when it picks each device's most
// recent snapshot.
func (db *DB) ListStatusSamples(ctx context.Context) ([]models.StatusSample, error) {
	rows, err := db.pool.Query(ctx, statusSampleSelect+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list status samples: %w", err)
	}
	defer rows.Close()

	return gatherStatusSamples(rows)
}

// GetStatusSamplesSince returns samples with timestamp >= since, ascending.
func (db *DB) GetStatusSamplesSince(ctx context.Context, since time.Time) ([]models.StatusSample, error) {
	rows, err := db.pool.Query(ctx,
		statusSampleSelect+` WHERE timestamp >= $1 ORDER BY timestamp ASC`, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("status samples since: %w", err)
	}
	defer rows.Close()

	return gatherStatusSamples(rows)
}

// GetStatusSamplesBetween returns samples in [start, end), ascending.
func (db *DB) GetStatusSamplesBetween(ctx context.Context, start, end time.Time) ([]models.StatusSample, error) {
	rows, err := db.pool.Query(ctx,
		statusSampleSelect+` WHERE timestamp >= $1 AND timestamp < $2 ORDER BY timestamp ASC`,
		start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("status samples between: %w", err)
	}
	defer rows.Close()

	return gatherStatusSamples(rows)
}

// GetDeviceStatusSince returns one device's samples with timestamp >= since,
// newest first.
func (db *DB) GetDeviceStatusSince(ctx context.Context, deviceID uuid.UUID, since time.Time) ([]models.StatusSample, error) {
	rows, err := db.pool.Query(ctx,
		statusSampleSelect+` WHERE device_id = $1 AND timestamp >= $2 ORDER BY timestamp DESC`,
		deviceID, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("device status samples: %w", err)
	}
	defer rows.Close()

	return gatherStatusSamples(rows)
}

// GetDeviceErrors returns one device's errors, newest first, bounded by limit.
func (db *DB) GetDeviceErrors(ctx context.Context, deviceID uuid.UUID, limit int) ([]models.ErrorSample, error) {
	if limit <= 0 {
		limit = defaultErrorListLimit
	}

	rows, err := db.pool.Query(ctx,
		errorSampleSelect+` WHERE device_id = $1 ORDER BY timestamp DESC LIMIT $2`,
		deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("device errors: %w", err)
	}
	defer rows.Close()

	return gatherErrorSamples(rows)
}

// ListErrorSamples returns errors newest first, optionally filtered by
// device and level, bounded by the filter limit.
func (db *DB) ListErrorSamples(ctx context.Context, filter ErrorFilter) ([]models.ErrorSample, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultErrorListLimit
	}

	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if filter.DeviceID != nil {
		args = append(args, *filter.DeviceID)
		conditions = append(conditions, fmt.Sprintf("device_id = $%d", len(args)))
	}

	if filter.Level != "" {
		args = append(args, filter.Level)
		conditions = append(conditions, fmt.Sprintf("level = $%d", len(args)))
	}

	query := errorSampleSelect
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d", len(args))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list error samples: %w", err)
	}
	defer rows.Close()

	return gatherErrorSamples(rows)
}

// CountErrorSamples counts every stored error sample.
func (db *DB) CountErrorSamples(ctx context.Context) (int64, error) {
	var count int64

	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM error_samples`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count error samples: %w", err)
	}

	return count, nil
}

func gatherStatusSamples(rows pgx.Rows) ([]models.StatusSample, error) {
	samples := make([]models.StatusSample, 0)

	for rows.Next() {
		var s models.StatusSample

		err := rows.Scan(
			&s.DeviceID,
			&s.Timestamp,
			&s.AgentVersion,
			&s.AgentStatus,
			&s.Runtime,
			&s.CPUPercent,
			&s.MemoryPercent,
			&s.MemoryTotal,
			&s.MemoryUsed,
			&s.DiskPercent,
			&s.DiskTotal,
			&s.DiskUsed,
			&s.UploadSpeed,
			&s.DownloadSpeed,
			&s.ContextTokens,
			&s.TotalTokens,
		)
		if err != nil {
			return nil, fmt.Errorf("scan status sample: %w", err)
		}

		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status samples: %w", err)
	}

	return samples, nil
}

func gatherErrorSamples(rows pgx.Rows) ([]models.ErrorSample, error) {
	samples := make([]models.ErrorSample, 0)

	for rows.Next() {
		var s models.ErrorSample

		err := rows.Scan(
			&s.DeviceID,
			&s.Timestamp,
			&s.Level,
			&s.Message,
			&s.Source,
			&s.StackTrace,
		)
		if err != nil {
			return nil, fmt.Errorf("scan error sample: %w", err)
		}

		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate error samples: %w", err)
	}

	return samples, nil
}
