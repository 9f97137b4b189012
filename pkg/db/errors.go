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

package db

import "errors"

var (

	// Core database errors.

	ErrFailedOpenDB = errors.New("failed to open database")

	// Registry lookups.

	ErrDeviceNotFound  = errors.New("device not found")
	ErrInvalidAPIKey   = errors.New("invalid api key")
	ErrDuplicateAPIKey = errors.New("api key already registered")

	// Validation errors.

	ErrDeviceNil         = errors.New("device is nil")
	ErrDeviceNameMissing = errors.New("device name is required")
	ErrStatusSampleNil   = errors.New("status sample is nil")
	ErrErrorSampleNil    = errors.New("error sample is nil")
	ErrNoUpdateFields    = errors.New("update carries no fields")
)
