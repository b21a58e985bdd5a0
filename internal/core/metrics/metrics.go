// Package metrics defines and registers the Prometheus metrics for the
// tracker edge service. It is the single source of truth for metric names,
// labels, and help strings; collectors register themselves with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bpost_tracker"

// Label values shared by the collectors below.
const (
	OutcomeRelayed       = "relayed"
	OutcomeRejected      = "rejected"
	OutcomeUpstreamError = "upstream_error"

	ResultOK       = "ok"
	ResultDegraded = "degraded"

	VariantHomepage = "homepage"
	VariantTracking = "tracking"
)

// ProxyRequestsTotal counts requests to the proxy route by outcome.
// Label:
//   - outcome: "relayed", "rejected" (validation or policy failure), or
//     "upstream_error" (transport failure on the outbound call)
var ProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_requests_total",
		Help:      "Total number of proxy requests, by outcome.",
	},
	[]string{"outcome"},
)

// UpstreamLookupsTotal counts tracking-summary lookups against the upstream API.
// Label:
//   - result: "ok" or "degraded" (lookup failed and the default summary was substituted)
var UpstreamLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_lookups_total",
		Help:      "Total number of tracking summary lookups, by result.",
	},
	[]string{"result"},
)

// CardsRenderedTotal counts generated social-preview images.
// Label:
//   - variant: "homepage" or "tracking"
var CardsRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_rendered_total",
		Help:      "Total number of SVG preview cards rendered, by variant.",
	},
	[]string{"variant"},
)

// PagesRenderedTotal counts HTML pages served with injected metadata.
// Label:
//   - variant: "homepage" or "tracking"
var PagesRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_rendered_total",
		Help:      "Total number of HTML pages served with injected preview metadata, by variant.",
	},
	[]string{"variant"},
)
