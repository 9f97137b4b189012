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

package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gpsnet "github.com/shirou/gopsutil/v3/net"

	"github.com/carverauto/fleetwatch/pkg/logger"
)

const cpuSampleInterval = time.Second

// NetCounters is a snapshot of cumulative interface byte counters. The
// status loop owns the previous snapshot and passes it back in; the sampler
// holds no state between calls.
type NetCounters struct {
	BytesSent uint64
	BytesRecv uint64
	At        time.Time
}

// ResourceSample is one round of system readings.
type ResourceSample struct {
	CPUPercent    float64
	MemoryPercent float64
	MemoryTotal   float64
	MemoryUsed    float64
	DiskPercent   float64
	DiskTotal     float64
	DiskUsed      float64
	UploadSpeed   float64
	DownloadSpeed float64
}

// Sampler reads system resources through gopsutil.
type Sampler struct {
	diskPath string
	log      logger.Logger
	now      func() time.Time
}

// NewSampler creates a sampler measuring the filesystem at diskPath.
func NewSampler(diskPath string, log logger.Logger) *Sampler {
	if diskPath == "" {
		diskPath = "/"
	}

	return &Sampler{diskPath: diskPath, log: log, now: time.Now}
}

// Collect gathers one resource sample. Byte rates are derived from the
// previous counters; the first call has nothing to diff against and reports
// zero speeds. Individual probe failures degrade to zero readings rather
// than failing the whole sample.
func (s *Sampler) Collect(ctx context.Context, prev NetCounters) (*ResourceSample, NetCounters, error) {
	sample := &ResourceSample{}

	usage, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false)
	if err != nil {
		s.log.Warn().Err(err).Msg("cpu.PercentWithContext failed; usage will be zero")
	} else if len(usage) > 0 {
		sample.CPUPercent = usage[0]
	}

	if vmStats, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		s.log.Warn().Err(err).Msg("mem.VirtualMemoryWithContext failed; memory will be zero")
	} else {
		sample.MemoryPercent = vmStats.UsedPercent
		sample.MemoryTotal = float64(vmStats.Total)
		sample.MemoryUsed = float64(vmStats.Used)
	}

	if diskStats, err := disk.UsageWithContext(ctx, s.diskPath); err != nil {
		s.log.Warn().Err(err).Str("path", s.diskPath).Msg("disk.UsageWithContext failed; disk will be zero")
	} else {
		sample.DiskPercent = diskStats.UsedPercent
		sample.DiskTotal = float64(diskStats.Total)
		sample.DiskUsed = float64(diskStats.Used)
	}

	current, err := s.netCounters(ctx)
	if err != nil {
		// Without fresh counters we can neither compute speeds nor
		// advance the snapshot.
		return sample, prev, fmt.Errorf("failed to read network counters: %w", err)
	}

	sample.UploadSpeed, sample.DownloadSpeed = networkSpeeds(prev, current)

	return sample, current, nil
}

func (s *Sampler) netCounters(ctx context.Context) (NetCounters, error) {
	stats, err := gpsnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return NetCounters{}, err
	}

	if len(stats) == 0 {
		return NetCounters{At: s.now()}, nil
	}

	return NetCounters{
		BytesSent: stats[0].BytesSent,
		BytesRecv: stats[0].BytesRecv,
		At:        s.now(),
	}, nil
}

// networkSpeeds converts two counter snapshots into byte-per-second rates.
// A zero previous snapshot or a counter rollover yields zero rates.
func networkSpeeds(prev, current NetCounters) (upload, download float64) {
	if prev.At.IsZero() {
		return 0, 0
	}

	elapsed := current.At.Sub(prev.At).Seconds()
	if elapsed <= 0 {
		return 0, 0
	}

	if current.BytesSent >= prev.BytesSent {
		upload = float64(current.BytesSent-prev.BytesSent) / elapsed
	}

	if current.BytesRecv >= prev.BytesRecv {
		download = float64(current.BytesRecv-prev.BytesRecv) / elapsed
	}

	return upload, download
}
