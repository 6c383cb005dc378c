// Package metrics defines and registers all custom Prometheus metrics for the
// AgroHelp API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agrohelp"

// RegistrationsTotal counts new account registrations.
// Label:
//   - role: "user" or "expert"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// QuestionsCreatedTotal counts questions submitted to experts.
var QuestionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_created_total",
		Help:      "Total number of questions submitted to experts.",
	},
)

// QuestionsAnsweredTotal counts expert replies, including overwrites of an
// earlier answer.
var QuestionsAnsweredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_answered_total",
		Help:      "Total number of replies written to questions.",
	},
)

// AIRequestsTotal counts proxied generative-AI calls.
// Labels:
//   - kind: "chat" or "vision"
//   - outcome: "ok", "quota", "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of proxied AI requests, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// AIFallbacksTotal counts chat requests served by the flash model after the
// pro model hit its quota.
var AIFallbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_fallbacks_total",
		Help:      "Total number of chat requests served by the fallback model.",
	},
)

// RateLimitHitsTotal counts requests rejected by the per-IP AI rate limiter.
var RateLimitHitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_hits_total",
		Help:      "Total number of AI requests rejected by the per-IP rate limiter.",
	},
)

// DetectionsTotal counts insect-detection calls.
// Label:
//   - outcome: "detected", "clean", "error"
var DetectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detections_total",
		Help:      "Total number of insect-detection requests, by outcome.",
	},
	[]string{"outcome"},
)
