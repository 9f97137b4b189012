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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
)

func TestKeywordClassifier(t *testing.T) {
	classifier := NewKeywordClassifier()

	assert.True(t, classifier.Match("2025-06-01 ERROR something broke"))
	assert.True(t, classifier.Match("unhandled exception in worker"))
	assert.True(t, classifier.Match("request FAILED after 3 attempts"))
	assert.True(t, classifier.Match("CRITICAL: disk almost full"))
	assert.False(t, classifier.Match("request completed in 12ms"))
	assert.False(t, classifier.Match(""))
}

func TestKeywordClassifierCustomKeywords(t *testing.T) {
	classifier := NewKeywordClassifier("panic")

	assert.True(t, classifier.Match("goroutine PANIC detected"))
	assert.False(t, classifier.Match("ERROR ignored with custom keywords"))
}

// watcherFixture wires a LogWatcher to a recording collector stub.
func watcherFixture(t *testing.T, path string) (*LogWatcher, *[]models.ErrorReport) {
	t.Helper()

	reports := &[]models.ErrorReport{}

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/report/error", r.URL.Path)

		var report models.ErrorReport
		require.NoError(t, json.NewDecoder(r.Body).Decode(&report))

		*reports = append(*reports, report)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	t.Cleanup(stub.Close)

	log := logger.NewTestLogger()
	reporter := NewReporter(stub.URL, "agent-key", log)

	return NewLogWatcher(path, NewKeywordClassifier(), reporter, log), reports
}

func TestLogWatcherReportsNewMatchingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.log")
	watcher, reports := watcherFixture(t, path)

	require.NoError(t, os.WriteFile(path,
		[]byte("info: started\nERROR: boom\n"), 0o600))
	require.NoError(t, watcher.Scan(context.Background()))

	require.Len(t, *reports, 1)
	assert.Equal(t, "ERROR: boom", (*reports)[0].Message)
	assert.Equal(t, "error", (*reports)[0].Level)
	assert.Equal(t, "gateway.log", (*reports)[0].Source)
	assert.Equal(t, "agent-key", (*reports)[0].APIKey)

	// A second scan with no new content reports nothing again.
	require.NoError(t, watcher.Scan(context.Background()))
	assert.Len(t, *reports, 1)

	// Appended lines are picked up from the remembered offset.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("all good\nexception: later\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, watcher.Scan(context.Background()))
	require.Len(t, *reports, 2)
	assert.Equal(t, "exception: later", (*reports)[1].Message)
}

func TestLogWatcherMissingFile(t *testing.T) {
	watcher, reports := watcherFixture(t, filepath.Join(t.TempDir(), "absent.log"))

	require.NoError(t, watcher.Scan(context.Background()))
	assert.Empty(t, *reports)
}

func TestLogWatcherTruncatedFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.log")
	watcher, reports := watcherFixture(t, path)

	require.NoError(t, os.WriteFile(path,
		[]byte(strings.Repeat("noise line\n", 20)), 0o600))
	require.NoError(t, watcher.Scan(context.Background()))
	require.Empty(t, *reports)

	// Rotation: file replaced with shorter content.
	require.NoError(t, os.WriteFile(path, []byte("ERROR after rotate\n"), 0o600))
	require.NoError(t, watcher.Scan(context.Background()))

	require.Len(t, *reports, 1)
	assert.Equal(t, "ERROR after rotate", (*reports)[0].Message)
}

func TestLogWatcherTruncatesLongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.log")
	watcher, reports := watcherFixture(t, path)

	long := "error: " + strings.Repeat("a", 600)
	require.NoError(t, os.WriteFile(path, []byte(long+"\n"), 0o600))
	require.NoError(t, watcher.Scan(context.Background()))

	require.Len(t, *reports, 1)
	assert.Len(t, (*reports)[0].Message, 500)
}
