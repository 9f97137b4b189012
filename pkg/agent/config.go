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

// Package agent implements the device-side reporter: it samples system
// resources, watches a log file and ships both to the collector.
package agent

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/carverauto/fleetwatch/pkg/models"
)

const (
	defaultServerURL       = "http://localhost:8090"
	defaultReportInterval  = 30 * time.Second
	defaultLogScanInterval = 10 * time.Second
)

// ErrAPIKeyMissing means the agent was started without credentials.
var ErrAPIKeyMissing = errors.New("API_KEY environment variable is required")

// LoadConfig reads the agent configuration from the environment. A local
// .env file is merged in first when present; real environment variables win.
func LoadConfig() (*models.AgentConfig, error) {
	// Ignore the error: a missing .env simply means env-only config.
	_ = godotenv.Load()

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	config := &models.AgentConfig{
		ServerURL:       envOrDefault("SERVER_URL", defaultServerURL),
		APIKey:          apiKey,
		ReportInterval:  models.Duration(envSecondsOrDefault("REPORT_INTERVAL", defaultReportInterval)),
		LogPath:         os.Getenv("LOG_PATH"),
		LogScanInterval: models.Duration(envSecondsOrDefault("LOG_SCAN_INTERVAL", defaultLogScanInterval)),
		TokenStatePath:  envOrDefault("TOKEN_STATE_PATH", defaultTokenStatePath()),
	}

	return config, nil
}

// defaultTokenStatePath points at the workload session file under the
// user's home directory. Empty when the home directory is unknown, which
// disables token reporting.
func defaultTokenStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".fleetwatch", "sessions.json")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// envSecondsOrDefault reads an interval expressed in whole seconds.
func envSecondsOrDefault(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return fallback
	}

	return time.Duration(seconds) * time.Second
}
