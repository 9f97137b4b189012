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
	"io"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
	"github.com/carverauto/fleetwatch/pkg/version"
)

const (
	publicIPEndpoint = "https://api.ipify.org"
	publicIPTimeout  = 5 * time.Second

	agentStatusRunning = "running"
)

// Agent runs the status and log-watch loops against one collector.
type Agent struct {
	config   *models.AgentConfig
	sampler  *Sampler
	reporter *Reporter
	watcher  *LogWatcher
	tokens   *TokenReader
	log      logger.Logger

	ipClient *http.Client
}

// New assembles an agent from its configuration. Log watching is enabled
// only when a log path is configured.
func New(config *models.AgentConfig, log logger.Logger) *Agent {
	reporter := NewReporter(config.ServerURL, config.APIKey, log)

	a := &Agent{
		config:   config,
		sampler:  NewSampler("/", log),
		reporter: reporter,
		log:      log,
		ipClient: &http.Client{Timeout: publicIPTimeout},
	}

	if config.LogPath != "" {
		a.watcher = NewLogWatcher(config.LogPath, NewKeywordClassifier(), reporter, log)
	}

	if config.TokenStatePath != "" {
		a.tokens = NewTokenReader(config.TokenStatePath, log)
	}

	return a
}

// Run starts the loops and blocks until the context is canceled.
func (a *Agent) Run(ctx context.Context) {
	a.log.Info().
		Str("server_url", a.config.ServerURL).
		Dur("report_interval", time.Duration(a.config.ReportInterval)).
		Str("version", version.GetVersion()).
		Msg("Agent starting")

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		a.statusLoop(ctx)
	}()

	if a.watcher != nil {
		wg.Add(1)

		go func() {
			defer wg.Done()
			a.logLoop(ctx)
		}()
	}

	wg.Wait()

	a.log.Info().Msg("Agent stopped")
}

func (a *Agent) statusLoop(ctx context.Context) {
	interval := time.Duration(a.config.ReportInterval)
	if interval <= 0 {
		interval = defaultReportInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var counters NetCounters

	// Report immediately so a fresh device shows up without waiting a
	// full interval.
	counters = a.reportOnce(ctx, counters)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			counters = a.reportOnce(ctx, counters)
		}
	}
}

func (a *Agent) reportOnce(ctx context.Context, prev NetCounters) NetCounters {
	sample, counters, err := a.sampler.Collect(ctx, prev)
	if err != nil {
		a.log.Warn().Err(err).Msg("Resource sampling incomplete")
	}

	var tokens TokenCounts
	if a.tokens != nil {
		tokens = a.tokens.Read()
	}

	report := buildStatusReport(sample, tokens, a.publicIP(ctx))

	if err := a.reporter.SendStatus(ctx, report); err != nil {
		a.log.Warn().Err(err).Msg("Failed to report status")
		return counters
	}

	a.log.Debug().
		Float64("cpu_percent", sample.CPUPercent).
		Float64("memory_percent", sample.MemoryPercent).
		Msg("Status reported")

	return counters
}

func (a *Agent) logLoop(ctx context.Context) {
	interval := time.Duration(a.config.LogScanInterval)
	if interval <= 0 {
		interval = defaultLogScanInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.watcher.Scan(ctx); err != nil {
				a.log.Warn().Err(err).Str("path", a.config.LogPath).Msg("Log scan failed")
			}
		}
	}
}

// publicIP asks an external service for the agent's public address. An
// empty string on failure makes the collector keep the last known IP.
func (a *Agent) publicIP(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, publicIPEndpoint, http.NoBody)
	if err != nil {
		return ""
	}

	resp, err := a.ipClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return ""
	}

	return string(body)
}

// buildStatusReport maps a resource sample and token counts onto the
// wire payload.
func buildStatusReport(sample *ResourceSample, tokens TokenCounts, publicIP string) *models.StatusReport {
	agentVersion := version.GetVersion()
	agentStatus := agentStatusRunning
	agentRuntime := runtime.GOOS + "/" + runtime.GOARCH

	report := &models.StatusReport{
		AgentVersion:  &agentVersion,
		AgentStatus:   &agentStatus,
		Runtime:       &agentRuntime,
		CPUPercent:    &sample.CPUPercent,
		MemoryPercent: &sample.MemoryPercent,
		MemoryTotal:   &sample.MemoryTotal,
		MemoryUsed:    &sample.MemoryUsed,
		DiskPercent:   &sample.DiskPercent,
		DiskTotal:     &sample.DiskTotal,
		DiskUsed:      &sample.DiskUsed,
		UploadSpeed:   &sample.UploadSpeed,
		DownloadSpeed: &sample.DownloadSpeed,
		ContextTokens: &tokens.ContextTokens,
		TotalTokens:   &tokens.TotalTokens,
	}

	if publicIP != "" {
		report.PublicIP = &publicIP
	}

	return report
}
