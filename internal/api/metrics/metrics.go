// Package metrics defines and registers all custom Prometheus metrics for
// the TechXchange marketplace API. It is the single source of truth for
// metric names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "techxchange"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts completed account registrations.
// Label:
//   - role: the role assigned at sign-up ("inventor" or "client")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts by outcome.
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

// AuthRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_header", "malformed_header", or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// ── Marketplace metrics ───────────────────────────────────────────────────────

// ListingsCreatedTotal counts newly posted IP listings.
// Label:
//   - ip_type: "Patent", "Trademark", or "Copyright"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of IP listings created, by IP type.",
	},
	[]string{"ip_type"},
)

// ExpertPromotionsTotal counts successful become-expert role promotions.
var ExpertPromotionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expert_promotions_total",
		Help:      "Total number of users promoted to the expert role.",
	},
)

// ── Audit queue metrics ───────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of events waiting in each audit worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)

// AuditErrorsTotal counts audit events that failed to persist.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events that failed processing.",
	},
)
