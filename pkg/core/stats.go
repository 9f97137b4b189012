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
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/fleetwatch/pkg/models"
)

// GetFleetStats computes the fleet-wide aggregate from current state. It is
// computed on demand from stored samples; there is no cached view, so an
// accepted report is visible in the very next call.
func (s *Server) GetFleetStats(ctx context.Context) (*models.FleetStats, error) {
	devices, err := s.DB.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	samples, err := s.DB.ListStatusSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status samples: %w", err)
	}

	errorCount, err := s.DB.CountErrorSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count error samples: %w", err)
	}

	now := s.now().UTC()
	todayStart := dayStart(now)
	yesterdayStart := todayStart.Add(-24 * time.Hour)

	todaySamples, err := s.DB.GetStatusSamplesBetween(ctx, todayStart, todayStart.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's samples: %w", err)
	}

	yesterdaySamples, err := s.DB.GetStatusSamplesBetween(ctx, yesterdayStart, todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load yesterday's samples: %w", err)
	}

	stats := &models.FleetStats{
		TotalDevices:    len(devices),
		TodayTokens:     dayTokenDelta(todaySamples, true),
		YesterdayTokens: dayTokenDelta(yesterdaySamples, false),
		TotalTokens:     globalTokenWatermark(samples),
		TotalErrors:     errorCount,
		Devices:         deviceSummaries(devices, samples),
	}

	for i := range devices {
		if devices[i].IsOnline {
			stats.OnlineDevices++
		} else {
			stats.OfflineDevices++
		}
	}

	return stats, nil
}

// globalTokenWatermark returns the fleet lifetime token figure: the single
// highest total_tokens value any device has ever reported. It is a
// watermark across the whole fleet, not a per-device sum.
func globalTokenWatermark(samples []models.StatusSample) int64 {
	var watermark int64

	for i := range samples {
		if samples[i].TotalTokens > watermark {
			watermark = samples[i].TotalTokens
		}
	}

	return watermark
}

// dayTokenDelta computes the token figure for one day window from the
// window's first and last samples in timestamp order, no matter which
// devices produced them. The delta is clamped at zero when a counter
// reset makes it go backwards. When countSingle is set, a window holding
// exactly one sample contributes that sample's value verbatim; otherwise
// single-sample windows contribute nothing. Interleaved fleets can make
// the figure undercount, a known limitation of the counter design.
func dayTokenDelta(windowed []models.StatusSample, countSingle bool) int64 {
	switch {
	case len(windowed) >= 2:
		delta := windowed[len(windowed)-1].TotalTokens - windowed[0].TotalTokens
		if delta > 0 {
			return delta
		}

		return 0
	case len(windowed) == 1 && countSingle:
		return windowed[0].TotalTokens
	default:
		return 0
	}
}

// deviceSummaries joins each device with its most recently appended status
// sample. Devices that never reported carry zero-valued metrics.
func deviceSummaries(devices []models.Device, samples []models.StatusSample) []models.DeviceSummary {
	latest := make(map[uuid.UUID]*models.StatusSample, len(devices))
	for i := range samples {
		// Samples arrive in append order; the last one per device wins.
		latest[samples[i].DeviceID] = &samples[i]
	}

	summaries := make([]models.DeviceSummary, 0, len(devices))

	for i := range devices {
		device := &devices[i]

		summary := models.DeviceSummary{
			ID:         device.ID,
			Name:       device.Name,
			DeviceType: device.DeviceType,
			PublicIP:   device.PublicIP,
			IsOnline:   device.IsOnline,
			LastSeen:   device.LastSeen,
		}

		if sample, ok := latest[device.ID]; ok {
			summary.AgentVersion = sample.AgentVersion
			summary.CPUPercent = sample.CPUPercent
			summary.MemoryPercent = sample.MemoryPercent
			summary.MemoryTotal = sample.MemoryTotal
			summary.MemoryUsed = sample.MemoryUsed
			summary.DiskPercent = sample.DiskPercent
			summary.DiskTotal = sample.DiskTotal
			summary.DiskUsed = sample.DiskUsed
			summary.UploadSpeed = sample.UploadSpeed
			summary.DownloadSpeed = sample.DownloadSpeed
			summary.TotalTokens = sample.TotalTokens
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
