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
	"sort"
	"time"

	"github.com/carverauto/fleetwatch/pkg/models"
)

const trendBucket = 5 * time.Minute

// GetTrends returns fleet-wide resource usage averaged into 5-minute
// buckets over the given lookback window.
func (s *Server) GetTrends(ctx context.Context, window time.Duration) ([]models.TrendPoint, error) {
	since := s.now().UTC().Add(-window)

	samples, err := s.DB.GetStatusSamplesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status samples: %w", err)
	}

	return bucketTrends(samples), nil
}

type trendAccumulator struct {
	cpuSum, memSum, diskSum float64
	cpuN, memN, diskN       int
}

// bucketTrends averages cpu, memory and disk percentages per 5-minute
// bucket. Each metric is averaged independently over its non-zero readings
// so an agent that omits a metric does not drag the fleet average down.
func bucketTrends(samples []models.StatusSample) []models.TrendPoint {
	buckets := make(map[time.Time]*trendAccumulator)

	for i := range samples {
		key := samples[i].Timestamp.UTC().Truncate(trendBucket)

		acc, ok := buckets[key]
		if !ok {
			acc = &trendAccumulator{}
			buckets[key] = acc
		}

		if samples[i].CPUPercent != 0 {
			acc.cpuSum += samples[i].CPUPercent
			acc.cpuN++
		}

		if samples[i].MemoryPercent != 0 {
			acc.memSum += samples[i].MemoryPercent
			acc.memN++
		}

		if samples[i].DiskPercent != 0 {
			acc.diskSum += samples[i].DiskPercent
			acc.diskN++
		}
	}

	points := make([]models.TrendPoint, 0, len(buckets))

	for key, acc := range buckets {
		point := models.TrendPoint{Time: key}

		if acc.cpuN > 0 {
			point.CPU = acc.cpuSum / float64(acc.cpuN)
		}

		if acc.memN > 0 {
			point.Memory = acc.memSum / float64(acc.memN)
		}

		if acc.diskN > 0 {
			point.Disk = acc.diskSum / float64(acc.diskN)
		}

		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})

	return points
}
