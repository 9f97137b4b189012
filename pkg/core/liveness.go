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

package core

import (
	"context"
	"time"
)

// MonitorDevices periodically sweeps the registry and flips devices offline
// once they have been silent for longer than the stale threshold. It blocks
// until the context is canceled.
func (s *Server) MonitorDevices(ctx context.Context) {
	interval := s.sweepInterval()

	s.logger.Info().
		Dur("interval", interval).
		Dur("stale_threshold", s.staleThreshold()).
		Msg("Starting device liveness monitor")

	// Initial sweep so a restart doesn't leave stale devices marked
	// online for a full interval.
	s.sweepStaleDevices(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Device liveness monitor stopping")
			return
		case <-ticker.C:
			s.sweepStaleDevices(ctx)
		}
	}
}

func (s *Server) sweepStaleDevices(ctx context.Context) {
	devices, err := s.DB.ListDevices(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Liveness sweep failed to list devices")
		return
	}

	now := s.now().UTC()
	threshold := s.staleThreshold()

	for i := range devices {
		device := &devices[i]
		if !device.IsOnline {
			continue
		}

		if !isStale(device.LastSeen, now, threshold) {
			continue
		}

		if err := s.DB.MarkDeviceOffline(ctx, device.ID); err != nil {
			s.logger.Error().Err(err).
				Str("device_id", device.ID.String()).
				Msg("Failed to mark device offline")

			continue
		}

		s.logger.Info().
			Str("device_id", device.ID.String()).
			Str("name", device.Name).
			Time("last_seen", *device.LastSeen).
			Msg("Device marked offline")
	}
}

// isStale reports whether a device's last heartbeat is strictly older than
// the threshold. Devices that never reported are not stale; they simply
// were never online.
func isStale(lastSeen *time.Time, now time.Time, threshold time.Duration) bool {
	if lastSeen == nil {
		return false
	}

	return now.Sub(*lastSeen) > threshold
}
