// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookEventsTotal counts inbound webhook deliveries by their gate or
	// decision result: bad_signature, event_ignored, not_a_pull_request_comment,
	// action_ignored, invalid_payload, skipped, approved, approval_failed,
	// scheduled.
	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approvebot_webhook_events_total",
			Help: "Inbound webhook deliveries by gate or decision result",
		},
		[]string{"result"},
	)

	// ApprovalsTotal counts executed approval attempts by outcome and path.
	ApprovalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approvebot_approvals_total",
			Help: "Executed approval attempts by status (success/failure) and mode (immediate/delayed)",
		},
		[]string{"status", "mode"},
	)

	// NotificationsTotal counts outcome notifications by delivery status.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approvebot_notifications_total",
			Help: "Outcome notifications by delivery status (sent/failed/skipped)",
		},
		[]string{"status"},
	)
)
