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

package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/carverauto/fleetwatch/pkg/logger"
)

// Duration wraps time.Duration so JSON configs can use either "5m" strings
// or raw nanosecond numbers.
type Duration time.Duration

var errInvalidDuration = fmt.Errorf("invalid duration")

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Database holds the Postgres connection settings for the sample store.
type Database struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	Database        string `json:"database"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	SSLMode         string `json:"ssl_mode,omitempty"`
	ApplicationName string `json:"application_name,omitempty"`
	MaxConnections  int32  `json:"max_connections,omitempty"`
	MinConnections  int32  `json:"min_connections,omitempty"`
}

// CORSConfig controls the CORS headers emitted by the API server.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// CoreServiceConfig is the top-level configuration for the collector server.
type CoreServiceConfig struct {
	ListenAddr     string         `json:"listen_addr"`
	Database       *Database      `json:"database"`
	StaleThreshold Duration       `json:"stale_threshold,omitempty"`
	SweepInterval  Duration       `json:"sweep_interval,omitempty"`
	CORS           CORSConfig     `json:"cors,omitempty"`
	Logging        *logger.Config `json:"logging,omitempty"`
}

var errDatabaseRequired = fmt.Errorf("database configuration is required")

// Validate checks the server config and fills in the listen address
// default.
func (c *CoreServiceConfig) Validate() error {
	if c.Database == nil {
		return errDatabaseRequired
	}

	if c.ListenAddr == "" {
		c.ListenAddr = ":8090"
	}

	return nil
}

// AgentConfig is the agent-side configuration, sourced from the
// environment. APIKey is mandatory.
type AgentConfig struct {
	ServerURL       string   `json:"server_url"`
	APIKey          string   `json:"api_key"`
	ReportInterval  Duration `json:"report_interval,omitempty"`
	LogPath         string   `json:"log_path,omitempty"`
	LogScanInterval Duration `json:"log_scan_interval,omitempty"`
	TokenStatePath  string   `json:"token_state_path,omitempty"`
}
