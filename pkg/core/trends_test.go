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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetwatch/pkg/models"
)

func TestBucketTrendsFlooring(t *testing.T) {
	id := uuid.New()

	at := func(h, m, s int) time.Time {
		return time.Date(2025, 6, 1, h, m, s, 0, time.UTC)
	}

	samples := []models.StatusSample{
		{DeviceID: id, Timestamp: at(10, 7, 0), CPUPercent: 10},
		{DeviceID: id, Timestamp: at(10, 4, 59), CPUPercent: 20},
		{DeviceID: id, Timestamp: at(10, 5, 0), CPUPercent: 30},
	}

	points := bucketTrends(samples)
	require.Len(t, points, 2)

	// Ascending bucket order.
	assert.Equal(t, at(10, 0, 0), points[0].Time)
	assert.Equal(t, at(10, 5, 0), points[1].Time)

	assert.InDelta(t, 20.0, points[0].CPU, 0.001)
	assert.InDelta(t, 20.0, points[1].CPU, 0.001) // mean of 10 and 30
}

func TestBucketTrendsIgnoresZeroReadingsPerMetric(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2025, 6, 1, 10, 1, 0, 0, time.UTC)

	samples := []models.StatusSample{
		{DeviceID: id, Timestamp: ts, CPUPercent: 40, MemoryPercent: 0, DiskPercent: 60},
		{DeviceID: id, Timestamp: ts.Add(time.Minute), CPUPercent: 0, MemoryPercent: 80, DiskPercent: 70},
	}

	points := bucketTrends(samples)
	require.Len(t, points, 1)

	// Each metric averages over its own non-zero readings.
	assert.InDelta(t, 40.0, points[0].CPU, 0.001)
	assert.InDelta(t, 80.0, points[0].Memory, 0.001)
	assert.InDelta(t, 65.0, points[0].Disk, 0.001)
}

func TestBucketTrendsAllZeroBucket(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	points := bucketTrends([]models.StatusSample{{DeviceID: id, Timestamp: ts}})
	require.Len(t, points, 1)
	assert.Zero(t, points[0].CPU)
	assert.Zero(t, points[0].Memory)
	assert.Zero(t, points[0].Disk)
}

func TestBucketTrendsEmpty(t *testing.T) {
	assert.Empty(t, bucketTrends(nil))
}
