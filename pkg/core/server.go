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

// Package core implements the collector's service layer: device registry,
// report ingestion, liveness monitoring and fleet statistics.
package core

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/carverauto/fleetwatch/pkg/db"
	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
)

const (
	defaultStaleThreshold = 5 * time.Minute
	defaultSweepInterval  = time.Minute

	defaultErrorLevel = "error"
	maxMessageLen     = 500
)

// Server coordinates ingestion, liveness and aggregation on top of the
// database service.
type Server struct {
	DB      db.Service
	config  *models.CoreServiceConfig
	logger  logger.Logger
	metrics *ingestMetrics
	now     func() time.Time
}

// ServerOption configures a Server during construction.
type ServerOption func(*Server)

// WithLogger sets the server's logger.
func WithLogger(log logger.Logger) ServerOption {
	return func(s *Server) {
		s.logger = log
	}
}

// WithClock overrides the server's time source. Used by tests.
func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		s.now = now
	}
}

// withMetrics overrides the ingestion metrics set, so tests can run with an
// unregistered collector.
func withMetrics(m *ingestMetrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates a Server around the given database service.
func NewServer(database db.Service, config *models.CoreServiceConfig, opts ...ServerOption) *Server {
	s := &Server{
		DB:     database,
		config: config,
		logger: logger.NewTestLogger(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = defaultIngestMetrics()
	}

	return s
}

func (s *Server) staleThreshold() time.Duration {
	if s.config != nil && s.config.StaleThreshold > 0 {
		return time.Duration(s.config.StaleThreshold)
	}

	return defaultStaleThreshold
}

func (s *Server) sweepInterval() time.Duration {
	if s.config != nil && s.config.SweepInterval > 0 {
		return time.Duration(s.config.SweepInterval)
	}

	return defaultSweepInterval
}

// ReportStatus authenticates a status report, refreshes the device's
// liveness and appends a sample stamped with the server clock.
func (s *Server) ReportStatus(ctx context.Context, report *models.StatusReport) (*models.StatusSample, error) {
	device, err := s.DB.GetDeviceByAPIKey(ctx, report.APIKey)
	if err != nil {
		s.metrics.reportsRejected.Inc()
		return nil, err
	}

	now := s.now().UTC()

	publicIP := ""
	if report.PublicIP != nil {
		publicIP = *report.PublicIP
	}

	if err := s.DB.MarkDeviceSeen(ctx, device.ID, publicIP, now); err != nil {
		return nil, fmt.Errorf("failed to mark device seen: %w", err)
	}

	sample := &models.StatusSample{
		DeviceID:      device.ID,
		Timestamp:     now,
		AgentVersion:  strDefault(report.AgentVersion),
		AgentStatus:   strDefault(report.AgentStatus),
		Runtime:       strDefault(report.Runtime),
		CPUPercent:    floatDefault(report.CPUPercent),
		MemoryPercent: floatDefault(report.MemoryPercent),
		MemoryTotal:   floatDefault(report.MemoryTotal),
		MemoryUsed:    floatDefault(report.MemoryUsed),
		DiskPercent:   floatDefault(report.DiskPercent),
		DiskTotal:     floatDefault(report.DiskTotal),
		DiskUsed:      floatDefault(report.DiskUsed),
		UploadSpeed:   floatDefault(report.UploadSpeed),
		DownloadSpeed: floatDefault(report.DownloadSpeed),
		ContextTokens: intDefault(report.ContextTokens),
		TotalTokens:   intDefault(report.TotalTokens),
	}

	if err := s.DB.InsertStatusSample(ctx, sample); err != nil {
		return nil, fmt.Errorf("failed to store status sample: %w", err)
	}

	s.metrics.statusAccepted.Inc()

	s.logger.Debug().
		Str("device_id", device.ID.String()).
		Float64("cpu_percent", sample.CPUPercent).
		Msg("Status report accepted")

	return sample, nil
}

// ReportError authenticates an error report and appends the sample. It does
// not touch the device's liveness state; only status reports count as a
// heartbeat.
func (s *Server) ReportError(ctx context.Context, report *models.ErrorReport) (*models.ErrorSample, error) {
	device, err := s.DB.GetDeviceByAPIKey(ctx, report.APIKey)
	if err != nil {
		s.metrics.reportsRejected.Inc()
		return nil, err
	}

	level := report.Level
	if level == "" {
		level = defaultErrorLevel
	}

	sample := &models.ErrorSample{
		DeviceID:   device.ID,
		Timestamp:  s.now().UTC(),
		Level:      level,
		Message:    truncateMessage(report.Message),
		Source:     report.Source,
		StackTrace: report.StackTrace,
	}

	if err := s.DB.InsertErrorSample(ctx, sample); err != nil {
		return nil, fmt.Errorf("failed to store error sample: %w", err)
	}

	s.metrics.errorsAccepted.Inc()

	s.logger.Debug().
		Str("device_id", device.ID.String()).
		Str("level", sample.Level).
		Msg("Error report accepted")

	return sample, nil
}

// truncateMessage caps messages at maxMessageLen characters, counting runes
// so a multi-byte character is never split.
func truncateMessage(msg string) string {
	if utf8.RuneCountInString(msg) <= maxMessageLen {
		return msg
	}

	return string([]rune(msg)[:maxMessageLen])
}

func strDefault(v *string) string {
	if v == nil {
		return ""
	}

	return strings.TrimSpace(*v)
}

func floatDefault(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func intDefault(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}
