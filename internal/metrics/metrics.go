// Package metrics provides Prometheus counters for the bot. Scrape them via
// the ops server /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	SCMMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scmm_bot_scmm_requests_total",
			Help: "Total number of SCMM API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scmm_bot_commands_total",
			Help: "Total number of slash command invocations",
		},
		[]string{"command"},
	)

	AutodeleteTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scmm_bot_autodelete_total",
			Help: "Total number of scheduled message deletions by outcome",
		},
		[]string{"outcome"},
	)
)
