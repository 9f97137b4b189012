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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
)

const (
	reportTimeout = 10 * time.Second

	statusPath = "/api/report/status"
	errorPath  = "/api/report/error"
)

// Reporter ships reports to the collector over HTTP. Failures are returned
// to the caller; the loops log them and carry on, there is no retry queue.
type Reporter struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logger.Logger
}

// NewReporter creates a reporter for the given collector URL.
func NewReporter(serverURL, apiKey string, log logger.Logger) *Reporter {
	return &Reporter{
		baseURL: strings.TrimRight(serverURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: reportTimeout},
		log:     log,
	}
}

// SendStatus posts a status report. The reporter fills in the API key.
func (r *Reporter) SendStatus(ctx context.Context, report *models.StatusReport) error {
	report.APIKey = r.apiKey
	return r.post(ctx, statusPath, report)
}

// SendError posts an error report. The reporter fills in the API key.
func (r *Reporter) SendError(ctx context.Context, report *models.ErrorReport) error {
	report.APIKey = r.apiKey
	return r.post(ctx, errorPath, report)
}

func (r *Reporter) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach collector: %w", err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("collector rejected report: %s", resp.Status)
	}

	return nil
}
