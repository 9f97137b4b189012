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

// Device represents a monitored machine in the fleet. The API key is the
// device's only credential and never changes after creation.
type Device struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	DeviceType string     `json:"device_type"`
	APIKey     string     `json:"api_key"`
	PublicIP   string     `json:"public_ip,omitempty"`
	IsOnline   bool       `json:"is_online"`
	LastSeen   *time.Time `json:"last_seen,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Notes      string     `json:"notes,omitempty"`
}

// DeviceCreateRequest is the payload for registering a new device. APIKey is
// optional; a random key is generated when it is empty.
type DeviceCreateRequest struct {
	Name       string `json:"name"`
	DeviceType string `json:"device_type,omitempty"`
	APIKey     string `json:"api_key,omitempty"`
	PublicIP   string `json:"public_ip,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// DeviceUpdateRequest carries a partial update; nil fields are left
// untouched.
type DeviceUpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	DeviceType *string `json:"device_type,omitempty"`
	PublicIP   *string `json:"public_ip,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// HasChanges reports whether the update carries at least one field.
func (r *DeviceUpdateRequest) HasChanges() bool {
	return r.Name != nil || r.DeviceType != nil || r.PublicIP != nil || r.Notes != nil
}
