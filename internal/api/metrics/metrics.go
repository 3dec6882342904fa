// Package metrics defines and registers all custom Prometheus metrics for the
// travel catalog API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// Prometheus registry on first import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens signed and handed out.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued after successful login.",
	},
)

// UsersRegisteredTotal counts new accounts, whether self-registered or
// provisioned by an administrator.
// Label:
//   - source: "self" or "admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, labelled by registration source.",
	},
	[]string{"source"},
)

// DestinationsCreatedTotal counts destinations added to the catalog.
var DestinationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "destinations_created_total",
		Help:      "Total number of destinations created.",
	},
)

// AuthzDenialsTotal counts requests rejected by the authorization policy.
// Label:
//   - path: the registered route path (not the raw URL)
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"path"},
)
