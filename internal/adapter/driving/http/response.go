package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// WebhookResponse is the JSON body returned for every webhook delivery.
// The platform delivering events always sees HTTP 200 for decision
// outcomes; Message describes what happened.
type WebhookResponse struct {
	Message      string `json:"message"`
	Approved     *bool  `json:"approved,omitempty"`
	Scheduled    bool   `json:"scheduled,omitempty"`
	DelaySeconds int    `json:"delay_seconds,omitempty"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Identity string `json:"identity"`
	Time     string `json:"time"`
}

// ApprovalRecordResponse is the JSON representation of one audit-log entry.
type ApprovalRecordResponse struct {
	ID             int64  `json:"id"`
	Repository     string `json:"repository"`
	PRNumber       int    `json:"pr_number"`
	Commenter      string `json:"commenter"`
	ActingIdentity string `json:"acting_identity"`
	Message        string `json:"message"`
	Success        bool   `json:"success"`
	FailureReason  string `json:"failure_reason,omitempty"`
	QuickTriggered bool   `json:"quick_triggered"`
	DelaySeconds   int    `json:"delay_seconds"`
	CreatedAt      string `json:"created_at"`
}

// toApprovalRecordResponse converts an audit record to its JSON representation.
func toApprovalRecordResponse(rec model.ApprovalRecord) ApprovalRecordResponse {
	return ApprovalRecordResponse{
		ID:             rec.ID,
		Repository:     rec.RepoFullName,
		PRNumber:       rec.PRNumber,
		Commenter:      rec.Commenter,
		ActingIdentity: rec.ActingIdentity,
		Message:        rec.Message,
		Success:        rec.Success,
		FailureReason:  rec.FailureReason,
		QuickTriggered: rec.QuickTriggered,
		DelaySeconds:   rec.DelaySeconds,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
