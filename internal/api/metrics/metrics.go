// Package metrics defines and registers all custom Prometheus metrics for the
// booking API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// CacheLookupsTotal counts table cache lookups.
// Labels:
//   - table: the logical table name (e.g. "Bookings")
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of table cache lookups, by table and result.",
	},
	[]string{"table", "result"},
)

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - trip_type: the booking's trip type code (e.g. "private")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by trip type.",
	},
	[]string{"trip_type"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// MessagesRenderedTotal counts rendered dispatch messages.
// Label:
//   - variant: "driver" or "staff"
var MessagesRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_rendered_total",
		Help:      "Total number of dispatch messages rendered, by variant.",
	},
	[]string{"variant"},
)
