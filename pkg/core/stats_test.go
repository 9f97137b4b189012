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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/fleetwatch/pkg/models"
)

func statusAt(deviceID uuid.UUID, ts time.Time, tokens int64) models.StatusSample {
	return models.StatusSample{DeviceID: deviceID, Timestamp: ts, TotalTokens: tokens}
}

func TestGlobalTokenWatermark(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Zero(t, globalTokenWatermark(nil))

	// The fleet figure is the single highest value, not a per-device sum.
	samples := []models.StatusSample{
		statusAt(a, ts, 100),
		statusAt(b, ts, 700),
		statusAt(a, ts, 350),
	}
	assert.Equal(t, int64(700), globalTokenWatermark(samples))
}

func TestDayTokenDelta(t *testing.T) {
	deviceA := uuid.New()
	deviceB := uuid.New()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		samples     []models.StatusSample
		countSingle bool
		want        int64
	}{
		{
			name: "two samples yield the delta",
			samples: []models.StatusSample{
				statusAt(deviceA, ts, 100),
				statusAt(deviceA, ts.Add(time.Hour), 160),
			},
			countSingle: true,
			want:        60,
		},
		{
			name: "counter reset clamps to zero",
			samples: []models.StatusSample{
				statusAt(deviceA, ts, 500),
				statusAt(deviceA, ts.Add(time.Hour), 20),
			},
			countSingle: true,
			want:        0,
		},
		{
			name:        "single sample counted verbatim for today",
			samples:     []models.StatusSample{statusAt(deviceA, ts, 250)},
			countSingle: true,
			want:        250,
		},
		{
			name:        "single sample ignored for yesterday",
			samples:     []models.StatusSample{statusAt(deviceA, ts, 250)},
			countSingle: false,
			want:        0,
		},
		{
			name:        "empty window",
			samples:     nil,
			countSingle: true,
			want:        0,
		},
		{
			// The window's global endpoints decide the figure, not one
			// span per device. A mixed fleet where the last reporter runs
			// behind the first clamps to zero.
			name: "interleaved devices use global endpoints",
			samples: []models.StatusSample{
				statusAt(deviceA, ts, 100),
				statusAt(deviceB, ts.Add(10*time.Minute), 10),
				statusAt(deviceA, ts.Add(time.Hour), 150),
				statusAt(deviceB, ts.Add(2*time.Hour), 40),
			},
			countSingle: true,
			want:        0,
		},
		{
			name: "interleaved devices with a growing tail",
			samples: []models.StatusSample{
				statusAt(deviceB, ts, 10),
				statusAt(deviceA, ts.Add(time.Hour), 100),
				statusAt(deviceA, ts.Add(2*time.Hour), 150),
			},
			countSingle: true,
			want:        140,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dayTokenDelta(tt.samples, tt.countSingle))
		})
	}
}

func TestDeviceSummariesUseLastAppendedSample(t *testing.T) {
	seen := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	deviceA := models.Device{ID: uuid.New(), Name: "a", DeviceType: "server", IsOnline: true, LastSeen: &seen}
	deviceB := models.Device{ID: uuid.New(), Name: "b", DeviceType: "kiosk"}

	samples := []models.StatusSample{
		{DeviceID: deviceA.ID, CPUPercent: 10, MemoryPercent: 20, TotalTokens: 5},
		{DeviceID: deviceA.ID, CPUPercent: 55, MemoryPercent: 60, TotalTokens: 9},
	}

	summaries := deviceSummaries([]models.Device{deviceA, deviceB}, samples)
	require.Len(t, summaries, 2)

	assert.Equal(t, deviceA.ID, summaries[0].ID)
	assert.InDelta(t, 55.0, summaries[0].CPUPercent, 0.001)
	assert.InDelta(t, 60.0, summaries[0].MemoryPercent, 0.001)
	assert.Equal(t, int64(9), summaries[0].TotalTokens)
	assert.True(t, summaries[0].IsOnline)

	// Never-reported device comes back zero-valued, not missing.
	assert.Equal(t, deviceB.ID, summaries[1].ID)
	assert.Zero(t, summaries[1].CPUPercent)
	assert.Zero(t, summaries[1].TotalTokens)
	assert.False(t, summaries[1].IsOnline)
}

func TestGetFleetStats(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	srv, mockDB := newTestServer(t, now)

	online := models.Device{ID: uuid.New(), Name: "online", IsOnline: true}
	offline := models.Device{ID: uuid.New(), Name: "offline"}

	todayStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	yesterdaySamples := []models.StatusSample{
		// Yesterday: delta 40.
		statusAt(online.ID, todayStart.Add(-20*time.Hour), 100),
		statusAt(online.ID, todayStart.Add(-2*time.Hour), 140),
	}
	todaySamples := []models.StatusSample{
		// Today: delta 60.
		statusAt(online.ID, todayStart.Add(8*time.Hour), 150),
		statusAt(online.ID, todayStart.Add(10*time.Hour), 210),
	}
	samples := append(append([]models.StatusSample{}, yesterdaySamples...), todaySamples...)

	mockDB.EXPECT().ListDevices(gomock.Any()).Return([]models.Device{online, offline}, nil)
	mockDB.EXPECT().ListStatusSamples(gomock.Any()).Return(samples, nil)
	mockDB.EXPECT().CountErrorSamples(gomock.Any()).Return(int64(7), nil)
	mockDB.EXPECT().GetStatusSamplesBetween(gomock.Any(), todayStart, todayStart.Add(24*time.Hour)).
		Return(todaySamples, nil)
	mockDB.EXPECT().GetStatusSamplesBetween(gomock.Any(), todayStart.Add(-24*time.Hour), todayStart).
		Return(yesterdaySamples, nil)

	stats, err := srv.GetFleetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalDevices)
	assert.Equal(t, 1, stats.OnlineDevices)
	assert.Equal(t, 1, stats.OfflineDevices)
	assert.Equal(t, int64(60), stats.TodayTokens)
	assert.Equal(t, int64(40), stats.YesterdayTokens)
	assert.Equal(t, int64(210), stats.TotalTokens)
	assert.Equal(t, int64(7), stats.TotalErrors)
	require.Len(t, stats.Devices, 2)
	assert.Equal(t, int64(210), stats.Devices[0].TotalTokens)
}

func TestGetFleetStatsEmptyStore(t *testing.T) {
	srv, mockDB := newTestServer(t, time.Now())

	mockDB.EXPECT().ListDevices(gomock.Any()).Return(nil, nil)
	mockDB.EXPECT().ListStatusSamples(gomock.Any()).Return(nil, nil)
	mockDB.EXPECT().CountErrorSamples(gomock.Any()).Return(int64(0), nil)
	mockDB.EXPECT().GetStatusSamplesBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(2)

	stats, err := srv.GetFleetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalDevices)
	assert.Zero(t, stats.TodayTokens)
	assert.Zero(t, stats.TotalTokens)
	assert.Empty(t, stats.Devices)
}
