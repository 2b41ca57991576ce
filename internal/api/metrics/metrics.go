// Package metrics defines and registers all custom Prometheus metrics for the
// FinanceFlow API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init; the /metrics endpoint and the echoprometheus request middleware are
// wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "financeflow"

// SignupsTotal counts accounts created through the signup endpoint. Bootstrap
// admin provisioning is not counted.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created via signup.",
	},
)

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

// GuardDenialsTotal counts requests rejected by an authorization guard before
// reaching the handler.
// Labels:
//   - guard:  "login", "admin", or "approved"
//   - reason: "unauthenticated", "forbidden", "not_found", or "backend_unavailable"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of requests rejected by an authorization guard.",
	},
	[]string{"guard", "reason"},
)

// RecordOpsTotal counts successful CRUD operations on record collections.
// Labels:
//   - collection: "invoices" or "transactions"
//   - op:         "list", "create", "update", or "delete"
var RecordOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_ops_total",
		Help:      "Total number of successful record operations, by collection and operation.",
	},
	[]string{"collection", "op"},
)
