package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the production Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// Message is the outbound email payload for the Resend send endpoint.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendReceipt is the provider's acknowledgment of an accepted message.
type SendReceipt struct {
	ID  string // provider message id, empty if the response was not parseable
	Raw string // raw response body, kept for observability
}

// APIError is a non-2xx answer from the Resend API. The raw body is
// preserved so callers can surface the provider's own diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if body == "" {
		body = "(empty response)"
	}
	return fmt.Sprintf("Resend error (%d): %s", e.StatusCode, body)
}

// Client defines the interface for interacting with the Resend API
type Client interface {
	SendEmail(ctx context.Context, msg Message) (*SendReceipt, error)
}

type clientImpl struct {
	apiKey  string
	baseURL string
}

// NewClient creates a new Resend client. An empty baseURL selects the
// production endpoint; tests point it at a stub server.
func NewClient(apiKey, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &clientImpl{
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

func (c *clientImpl) SendEmail(ctx context.Context, msg Message) (*SendReceipt, error) {
	jsonPayload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication and content type headers
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		body = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	receipt := &SendReceipt{Raw: string(body)}

	// Parse response; an unparseable 2xx body is still a success
	var response struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &response); err == nil {
		receipt.ID = response.ID
	}

	return receipt, nil
}
