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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ingestMetrics counts report ingestion outcomes.
type ingestMetrics struct {
	statusAccepted  prometheus.Counter
	errorsAccepted  prometheus.Counter
	reportsRejected prometheus.Counter
}

func newIngestMetrics(reg prometheus.Registerer) *ingestMetrics {
	factory := promauto.With(reg)

	return &ingestMetrics{
		statusAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleetwatch_status_reports_accepted_total",
			Help: "Status reports accepted and stored.",
		}),
		errorsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleetwatch_error_reports_accepted_total",
			Help: "Error reports accepted and stored.",
		}),
		reportsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleetwatch_reports_rejected_total",
			Help: "Reports rejected for an unknown API key.",
		}),
	}
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     *ingestMetrics
)

// defaultIngestMetrics registers the counters on the default registry
// exactly once, so multiple Server instances in one process share them.
func defaultIngestMetrics() *ingestMetrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = newIngestMetrics(prometheus.DefaultRegisterer)
	})

	return defaultMetrics
}

// newTestIngestMetrics returns counters bound to a throwaway registry.
func newTestIngestMetrics() *ingestMetrics {
	return newIngestMetrics(prometheus.NewRegistry())
}
