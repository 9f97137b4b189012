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
	"time"

	"github.com/google/uuid"
)

// StatusSample is one accepted status report. The timestamp is assigned by
// the server at ingestion time; samples are immutable once stored.
type StatusSample struct {
	DeviceID uuid.UUID `json:"device_id"`
	// Timestamp is server-assigned, never supplied by the agent.
	Timestamp time.Time `json:"timestamp"`

	AgentVersion string `json:"agent_version,omitempty"`
	AgentStatus  string `json:"agent_status,omitempty"`
	Runtime      string `json:"runtime,omitempty"`

	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryTotal   float64 `json:"memory_total"`
	MemoryUsed    float64 `json:"memory_used"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskTotal     float64 `json:"disk_total"`
	DiskUsed      float64 `json:"disk_used"`

	UploadSpeed   float64 `json:"upload_speed"`
	DownloadSpeed float64 `json:"download_speed"`

	ContextTokens int64 `json:"context_tokens"`
	TotalTokens   int64 `json:"total_tokens"`
}

// ErrorSample is one reported error or log line.
type ErrorSample struct {
	DeviceID   uuid.UUID `json:"device_id"`
	Timestamp  time.Time `json:"timestamp"`
	Level      string    `json:"level"`
	Message    string    `json:"message"`
	Source     string    `json:"source,omitempty"`
	StackTrace string    `json:"stack_trace,omitempty"`
}

// StatusReport is the agent's status payload. Every metric field is
// optional; nil values default to zero at storage time.
type StatusReport struct {
	APIKey string `json:"api_key"`

	AgentVersion *string `json:"agent_version,omitempty"`
	AgentStatus  *string `json:"agent_status,omitempty"`
	Runtime      *string `json:"runtime,omitempty"`

	CPUPercent    *float64 `json:"cpu_percent,omitempty"`
	MemoryPercent *float64 `json:"memory_percent,omitempty"`
	MemoryTotal   *float64 `json:"memory_total,omitempty"`
	MemoryUsed    *float64 `json:"memory_used,omitempty"`
	DiskPercent   *float64 `json:"disk_percent,omitempty"`
	DiskTotal     *float64 `json:"disk_total,omitempty"`
	DiskUsed      *float64 `json:"disk_used,omitempty"`

	UploadSpeed   *float64 `json:"upload_speed,omitempty"`
	DownloadSpeed *float64 `json:"download_speed,omitempty"`

	PublicIP *string `json:"public_ip,omitempty"`

	ContextTokens *int64 `json:"context_tokens,omitempty"`
	TotalTokens   *int64 `json:"total_tokens,omitempty"`
}

// ErrorReport is the agent's error payload.
type ErrorReport struct {
	APIKey     string `json:"api_key"`
	Level      string `json:"level,omitempty"`
	Message    string `json:"message"`
	Source     string `json:"source,omitempty"`
	StackTrace string `json:"stack_trace,omitempty"`
}
