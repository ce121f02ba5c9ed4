// Package metrics defines the custom Prometheus metrics for the chat message
// API. HTTP request metrics come from echoprometheus; everything here is
// domain level.
//
// All collectors register with the default registry on package load via
// promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chat"

// ── Message metrics ───────────────────────────────────────────────────────────

// MessagesCreatedTotal counts messages accepted by the ingestion pipeline.
// Label:
//   - session: "new" when the message opened a session, "existing" otherwise
var MessagesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_created_total",
		Help:      "Total number of messages stored, by whether a session was opened.",
	},
	[]string{"session"},
)

// MessagesRejectedTotal counts messages refused by the pipeline.
// Label:
//   - reason: "banned_content", "sender_not_found", "session_not_found", "invalid"
var MessagesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_rejected_total",
		Help:      "Total number of messages rejected before storage.",
	},
	[]string{"reason"},
)

// MessagesReplayedTotal counts posts answered from an earlier Idempotency-Key.
var MessagesReplayedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_replayed_total",
		Help:      "Total number of idempotent replays of an earlier message post.",
	},
)

// MessageIngestDuration measures a full pass through the ingestion pipeline.
// Label:
//   - outcome: "created", "replayed" or "error"
var MessageIngestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "message_ingest_duration_seconds",
		Help:      "Duration of message ingestion from request decode to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsCreatedTotal counts sessions opened.
// Label:
//   - origin: "message" (implicit, first post) or "api" (POST /api/sessions)
var SessionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of chat sessions created, by origin.",
	},
	[]string{"origin"},
)
