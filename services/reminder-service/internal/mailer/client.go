package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

// Client delivers notifications through the mail-server HTTP API.
// The 10 second timeout bounds each dispatch; a timed-out send is reported
// as a delivery failure like any other transport error.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a mail delivery client from configuration.
func NewClient() *Client {
	baseURL := viper.GetString("mailer.api_url")
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts one message to the mail-server. Non-2xx responses are returned
// as errors carrying the response body for operator logs.
func (c *Client) Send(ctx context.Context, msg models.EmailMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	url := fmt.Sprintf("%s/send", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
