/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package agent

import (
	"encoding/json"
	"os"

	"github.com/carverauto/fleetwatch/pkg/logger"
)

// TokenCounts carries the workload token counters attached to every
// status report.
type TokenCounts struct {
	ContextTokens int64
	TotalTokens   int64
}

// TokenReader sums per-session token counters from the JSON state file
// maintained by the monitored workload. A missing or malformed file
// yields zero counts; resource reporting continues either way.
type TokenReader struct {
	path string
	log  logger.Logger
}

// NewTokenReader creates a reader for the given state file path.
func NewTokenReader(path string, log logger.Logger) *TokenReader {
	return &TokenReader{path: path, log: log}
}

type tokenSession struct {
	ContextTokens int64 `json:"contextTokens"`
	TotalTokens   int64 `json:"totalTokens"`
}

// Read sums the counters across every session in the state file.
func (r *TokenReader) Read() TokenCounts {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Debug().Err(err).Str("path", r.path).Msg("Token state unreadable")
		}

		return TokenCounts{}
	}

	sessions, err := decodeTokenSessions(data)
	if err != nil {
		r.log.Debug().Err(err).Str("path", r.path).Msg("Token state malformed")
		return TokenCounts{}
	}

	var counts TokenCounts

	for _, session := range sessions {
		counts.ContextTokens += session.ContextTokens
		counts.TotalTokens += session.TotalTokens
	}

	return counts
}

// decodeTokenSessions accepts either a document with the sessions map
// nested under a "sessions" key or one that is the map itself. Entries
// that are not objects are skipped.
func decodeTokenSessions(data []byte) (map[string]tokenSession, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	raw := doc

	if nested, ok := doc["sessions"]; ok {
		inner := make(map[string]json.RawMessage)
		if err := json.Unmarshal(nested, &inner); err != nil {
			return nil, err
		}

		raw = inner
	}

	sessions := make(map[string]tokenSession, len(raw))

	for key, msg := range raw {
		var session tokenSession
		if err := json.Unmarshal(msg, &session); err != nil {
			continue
		}

		sessions[key] = session
	}

	return sessions, nil
}
