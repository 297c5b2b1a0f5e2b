package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Notifier is the outbound boundary for confirmations and reminders.
// Delivery is best effort; booking consistency never depends on it.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

var ErrDelivery = errors.New("delivery failed")

// New picks a provider by name. Unknown names fall back to logging,
// so a misconfigured environment still boots.
func New(provider, webhookURL string, log *zap.Logger) Notifier {
	switch provider {
	case "webhook":
		if webhookURL == "" {
			return &LogNotifier{log: log}
		}
		return &WebhookNotifier{
			url:    webhookURL,
			client: &http.Client{Timeout: 10 * time.Second},
		}
	default:
		return &LogNotifier{log: log}
	}
}

type LogNotifier struct {
	log *zap.Logger
}

func (n *LogNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	n.log.Info("notification",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

type WebhookNotifier struct {
	url    string
	client *http.Client
}

func (n *WebhookNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(map[string]string{
		"recipient": recipient,
		"subject":   subject,
		"body":      body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrDelivery, resp.StatusCode)
	}
	return nil
}
