// Package metrics defines and registers all custom Prometheus metrics for
// the translation dashboard API. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Notification metrics ──────────────────────────────────────────────────

// NotificationsDispatchedTotal counts notifications successfully persisted.
// Label:
//   - type: task_assigned, project_update, deadline_reminder, or system
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of notifications successfully persisted, by type.",
	},
	[]string{"type"},
)

// NotificationsFailedTotal counts notifications whose delivery failed.
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notifications that failed to persist, by type.",
	},
	[]string{"type"},
)

// NotificationsDroppedTotal counts notices discarded because a worker
// queue was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped due to a full worker queue.",
	},
)

// NotificationQueueDepth tracks pending notices per dispatcher worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────

// WebhookEventsTotal counts identity lifecycle webhook deliveries.
// Labels:
//   - type: the event type (e.g. "user.created"), or "unknown" pre-parse
//   - result: "processed", "bad_signature", "invalid_payload", or "error"
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of identity webhook deliveries, by event type and result.",
	},
	[]string{"type", "result"},
)

// ── Domain mutation metrics ───────────────────────────────────────────────

// ProjectsCreatedTotal counts newly created projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "low", "medium", or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)
