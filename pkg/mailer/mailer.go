package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/chronos-atelier/chronos-backend/pkg/config"
)

// Mailer relays transactional email through the Resend HTTP API.
type Mailer struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	client  *http.Client
}

// New constructs a mailer from relay configuration. Call cfg.Enabled() first;
// New rejects incomplete configuration.
func New(cfg config.RelayConfig) (*Mailer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("relay configuration is incomplete")
	}

	return &Mailer{
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		to:      cfg.To,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// InquiryEmail carries the fields mirrored into the relay message.
type InquiryEmail struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendInquiry relays a stored inquiry to the configured inbox.
func (m *Mailer) SendInquiry(ctx context.Context, inquiry InquiryEmail) error {
	subject := inquiry.Subject
	if subject == "" {
		subject = "New inquiry"
	}

	body := sendRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("[Chronos] %s", subject),
		HTML: fmt.Sprintf(
			"<p><strong>%s</strong> &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(inquiry.Name),
			html.EscapeString(inquiry.Email),
			html.EscapeString(inquiry.Message),
		),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("relay rejected message (%d): %s", resp.StatusCode, string(detail))
	}

	return nil
}
