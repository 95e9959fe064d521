package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEndpoint = "https://exp.host/--/api/v2/push/send"

// Pusher delivers a push notification to one device token.
type Pusher interface {
	Send(ctx context.Context, token, title, body string) error
}

// NopPusher is used when push is disabled in config.
type NopPusher struct{}

func (NopPusher) Send(ctx context.Context, token, title, body string) error {
	return nil
}

// ExpoClient talks to the Expo push gateway.
type ExpoClient struct {
	endpoint string
	client   *http.Client
}

func NewExpoClient(endpoint string) *ExpoClient {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &ExpoClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type pushMessage struct {
	To    string `json:"to"`
	Sound string `json:"sound"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *ExpoClient) Send(ctx context.Context, token, title, body string) error {
	if token == "" {
		return fmt.Errorf("push token is empty")
	}

	payload, err := json.Marshal(pushMessage{
		To:    token,
		Sound: "default",
		Title: title,
		Body:  body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}
