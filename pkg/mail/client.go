// Package mail provides a lightweight Resend API client for contact-form
// notifications. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"
)

const apiURL = "https://api.resend.com/emails"

// Message is one operator notification. ReplyTo carries the visitor's
// address so the operator can answer directly.
type Message struct {
	Subject string
	Name    string
	ReplyTo string
	Body    string
}

// Client sends operator notifications.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// RealClient is the raw HTTP implementation of Client.
type RealClient struct {
	apiKey     string
	from       string
	to         string
	httpClient *http.Client
}

// NewClient creates a RealClient. Returns nil when apiKey or to is empty,
// which disables notifications entirely.
func NewClient(apiKey, from, to string) *RealClient {
	if apiKey == "" || to == "" {
		return nil
	}
	if from == "" {
		from = "onboarding@resend.dev"
	}
	return &RealClient{
		apiKey: apiKey,
		from:   from,
		to:     to,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ Client = (*RealClient)(nil)

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts one email to the Resend API. Single best-effort request, no
// retry or backoff; callers decide whether a failure matters.
func (c *RealClient) Send(ctx context.Context, msg Message) error {
	body := fmt.Sprintf(
		"<p><strong>%s</strong> &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.ReplyTo),
		html.EscapeString(msg.Body),
	)
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{c.to},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("mail: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("mail: request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("mail: send failed: %d %s", resp.StatusCode, apiErr.Message)
	}
	return nil
}
