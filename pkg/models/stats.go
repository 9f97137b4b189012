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

// FleetStats is the fleet-wide aggregate exposed to the dashboard.
type FleetStats struct {
	TotalDevices    int             `json:"total_devices"`
	OnlineDevices   int             `json:"online_devices"`
	OfflineDevices  int             `json:"offline_devices"`
	TodayTokens     int64           `json:"today_tokens"`
	YesterdayTokens int64           `json:"yesterday_tokens"`
	TotalTokens     int64           `json:"total_tokens"`
	TotalErrors     int64           `json:"total_errors"`
	Devices         []DeviceSummary `json:"devices"`
}

// DeviceSummary pairs device identity with its most recent metric snapshot.
// Devices that never reported carry all-zero metrics.
type DeviceSummary struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	DeviceType string     `json:"device_type"`
	PublicIP   string     `json:"public_ip,omitempty"`
	IsOnline   bool       `json:"is_online"`
	LastSeen   *time.Time `json:"last_seen,omitempty"`

	AgentVersion  string  `json:"agent_version,omitempty"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryTotal   float64 `json:"memory_total"`
	MemoryUsed    float64 `json:"memory_used"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskTotal     float64 `json:"disk_total"`
	DiskUsed      float64 `json:"disk_used"`
	UploadSpeed   float64 `json:"upload_speed"`
	DownloadSpeed float64 `json:"download_speed"`
	TotalTokens   int64   `json:"total_tokens"`
}

// TrendPoint is one 5-minute bucket of averaged resource readings.
type TrendPoint struct {
	Time   time.Time `json:"time"`
	CPU    float64   `json:"cpu"`
	Memory float64   `json:"memory"`
	Disk   float64   `json:"disk"`
}
