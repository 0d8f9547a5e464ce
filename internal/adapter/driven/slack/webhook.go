// Package slack implements the Notifier port against a Slack-style incoming
// webhook: an HTTP endpoint accepting a JSON object with a single text field.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ericfisherdev/approvebot/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Notifier = (*Sender)(nil)

// Sender posts outcome reports to an incoming-webhook URL.
type Sender struct {
	url    string
	client *http.Client
}

// NewSender creates a Sender for the given webhook URL.
func NewSender(url string) *Sender {
	return &Sender{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// message is the webhook payload schema.
type message struct {
	Text string `json:"text"`
}

// Send delivers one text message. A non-2xx response is an error; the caller
// decides whether to swallow it.
func (s *Sender) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(message{Text: text})
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification endpoint returned %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
