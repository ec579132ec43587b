// Package metrics defines the custom Prometheus metrics for the campaign API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register with the default registry at package init; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campaign_api"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// CampaignWritesTotal counts successful mutations of the campaigns table.
// Label:
//   - operation: "create", "update", or "delete"
var CampaignWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "campaign_writes_total",
		Help:      "Total number of successful campaign mutations, by operation.",
	},
	[]string{"operation"},
)
