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
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
)

const maxReportedLineLen = 500

// LineClassifier decides whether a log line is worth reporting.
type LineClassifier interface {
	Match(line string) bool
}

// KeywordClassifier matches lines containing any of its keywords,
// case-insensitively.
type KeywordClassifier struct {
	keywords []string
}

// NewKeywordClassifier builds a classifier over the given keywords. With no
// keywords it falls back to the default error vocabulary.
func NewKeywordClassifier(keywords ...string) *KeywordClassifier {
	if len(keywords) == 0 {
		keywords = []string{"error", "exception", "fail", "critical"}
	}

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	return &KeywordClassifier{keywords: lowered}
}

// Match reports whether the line contains any keyword.
func (c *KeywordClassifier) Match(line string) bool {
	lowered := strings.ToLower(line)

	for _, kw := range c.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}

	return false
}

// LogWatcher tails a log file and reports matching new lines. It remembers
// the last read offset between scans so each line is reported at most once.
type LogWatcher struct {
	path       string
	source     string
	offset     int64
	classifier LineClassifier
	reporter   *Reporter
	log        logger.Logger
}

// NewLogWatcher creates a watcher over the given file.
func NewLogWatcher(path string, classifier LineClassifier, reporter *Reporter, log logger.Logger) *LogWatcher {
	return &LogWatcher{
		path:       path,
		source:     filepath.Base(path),
		classifier: classifier,
		reporter:   reporter,
		log:        log,
	}
}

// Scan reads lines appended since the previous scan and reports the ones
// the classifier matches. A missing file is not an error; a shrunken file
// means rotation or truncation and resets the offset to the start.
func (w *LogWatcher) Scan(ctx context.Context) error {
	file, err := os.Open(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	if info.Size() < w.offset {
		w.offset = 0
	}

	if _, err := file.Seek(w.offset, 0); err != nil {
		return err
	}

	reader := bufio.NewReader(file)

	for {
		line, err := reader.ReadString('\n')
		if line != "" && strings.HasSuffix(line, "\n") {
			w.offset += int64(len(line))
			w.reportLine(ctx, strings.TrimSpace(line))
		}

		if err != nil {
			// A trailing partial line stays unconsumed until its
			// newline arrives.
			return nil
		}
	}
}

func (w *LogWatcher) reportLine(ctx context.Context, line string) {
	if line == "" || !w.classifier.Match(line) {
		return
	}

	report := &models.ErrorReport{
		Level:   "error",
		Message: truncateLine(line),
		Source:  w.source,
	}

	if err := w.reporter.SendError(ctx, report); err != nil {
		w.log.Warn().Err(err).Msg("Failed to report log line")
	}
}

func truncateLine(line string) string {
	if utf8.RuneCountInString(line) <= maxReportedLineLen {
		return line
	}

	return string([]rune(line)[:maxReportedLineLen])
}
