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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("API_KEY", "agent-key")
	t.Setenv("SERVER_URL", "")
	t.Setenv("REPORT_INTERVAL", "")
	t.Setenv("LOG_PATH", "")
	t.Setenv("LOG_SCAN_INTERVAL", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "agent-key", config.APIKey)
	assert.Equal(t, defaultServerURL, config.ServerURL)
	assert.Equal(t, 30*time.Second, time.Duration(config.ReportInterval))
	assert.Equal(t, 10*time.Second, time.Duration(config.LogScanInterval))
	assert.Empty(t, config.LogPath)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("API_KEY", "agent-key")
	t.Setenv("SERVER_URL", "https://collector.example:8443")
	t.Setenv("REPORT_INTERVAL", "5")
	t.Setenv("LOG_PATH", "/var/log/gateway.log")
	t.Setenv("LOG_SCAN_INTERVAL", "2")
	t.Setenv("TOKEN_STATE_PATH", "/srv/state/sessions.json")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://collector.example:8443", config.ServerURL)
	assert.Equal(t, 5*time.Second, time.Duration(config.ReportInterval))
	assert.Equal(t, "/var/log/gateway.log", config.LogPath)
	assert.Equal(t, 2*time.Second, time.Duration(config.LogScanInterval))
	assert.Equal(t, "/srv/state/sessions.json", config.TokenStatePath)
}

func TestLoadConfigBadIntervalFallsBack(t *testing.T) {
	t.Setenv("API_KEY", "agent-key")
	t.Setenv("REPORT_INTERVAL", "banana")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, time.Duration(config.ReportInterval))
}
