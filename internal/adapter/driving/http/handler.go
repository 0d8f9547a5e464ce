// Package httphandler is the HTTP driving adapter: the webhook endpoint,
// the health check, and the audit-log API.
package httphandler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ericfisherdev/approvebot/internal/application"
	"github.com/ericfisherdev/approvebot/internal/domain/model"
	"github.com/ericfisherdev/approvebot/internal/domain/port/driven"
	"github.com/ericfisherdev/approvebot/internal/metrics"
)

// Handler is the HTTP driving adapter.
type Handler struct {
	svc           *application.ApprovalService
	outcomes      driven.OutcomeStore
	identity      string
	webhookSecret string
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. webhookSecret
// may be empty, which disables signature validation.
func NewHandler(
	svc *application.ApprovalService,
	outcomes driven.OutcomeStore,
	identity string,
	webhookSecret string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		svc:           svc,
		outcomes:      outcomes,
		identity:      identity,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /webhook", h.Webhook)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/approvals", h.ListApprovals)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Webhook ingests one GitHub event delivery. Gate rejections and Skip
// decisions are normal outcomes answered with HTTP 200 so the delivering
// platform never sees an error for a no-op.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := h.readPayload(r)
	if err != nil {
		h.logger.Warn("rejected webhook delivery", "error", err)
		countWebhookResult("bad_signature")
		writeError(w, http.StatusUnauthorized, "signature validation failed")
		return
	}

	eventType := gh.WebHookType(r)
	ev, reason := gateComment(eventType, payload)
	if ev == nil {
		h.logger.Info("webhook delivery filtered", "event_type", eventType, "reason", reason)
		countWebhookResult(reason)
		status := http.StatusOK
		if reason == gateInvalidPayload {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, WebhookResponse{Message: reason})
		return
	}

	result := h.svc.HandleComment(r.Context(), *ev)

	switch result.Decision.Kind {
	case model.DecisionApproveNow:
		approved := result.Outcome != nil && result.Outcome.Success
		msg := "pull request approved"
		if !approved {
			msg = "approval failed"
			countWebhookResult("approval_failed")
		} else {
			countWebhookResult("approved")
		}
		writeJSON(w, http.StatusOK, WebhookResponse{Message: msg, Approved: &approved})

	case model.DecisionApproveAfter:
		countWebhookResult("scheduled")
		writeJSON(w, http.StatusOK, WebhookResponse{
			Message:      "approval scheduled",
			Scheduled:    true,
			DelaySeconds: int(result.Decision.Delay / time.Second),
		})

	default:
		countWebhookResult("skipped")
		writeJSON(w, http.StatusOK, WebhookResponse{Message: "conditions not met"})
	}
}

// readPayload reads the request body, validating the HMAC signature first
// when a webhook secret is configured.
func (h *Handler) readPayload(r *http.Request) ([]byte, error) {
	if h.webhookSecret != "" {
		return gh.ValidatePayload(r, []byte(h.webhookSecret))
	}
	return io.ReadAll(r.Body)
}

// ListApprovals returns the most recent audit-log entries, newest first.
// A limit query parameter caps the result; default 50, max 500.
func (h *Handler) ListApprovals(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(parsed, 500)
	}

	records, err := h.outcomes.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list approvals", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ApprovalRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toApprovalRecordResponse(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health returns service status and the acting identity.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Identity: h.identity,
		Time:     time.Now().UTC().Format(time.RFC3339),
	})
}

// countWebhookResult increments the delivery counter, normalizing the
// human-readable gate reasons into label-safe values.
func countWebhookResult(result string) {
	metrics.WebhookEventsTotal.WithLabelValues(strings.ReplaceAll(result, " ", "_")).Inc()
}
