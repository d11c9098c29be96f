package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "maintenance-tracker-backend/internal/errors"

	"golang.org/x/oauth2"
)

const (
	// DefaultMailAPIURL is the transactional e-mail endpoint
	DefaultMailAPIURL = "https://api.resend.com/emails"

	mailChannel = "email"
)

// ResendNotifier sends notifications through the Resend e-mail API
type ResendNotifier struct {
	url    string
	from   string
	client *http.Client
}

// ResendOption configures a ResendNotifier
type ResendOption func(*ResendNotifier)

// WithHTTPClient replaces the HTTP client. The client is used as is, so it must
// add its own Authorization header.
func WithHTTPClient(client *http.Client) ResendOption {
	return func(n *ResendNotifier) {
		if client != nil {
			n.client = client
		}
	}
}

// WithAPIURL overrides the API endpoint
func WithAPIURL(url string) ResendOption {
	return func(n *ResendNotifier) {
		if url != "" {
			n.url = url
		}
	}
}

// NewResendNotifier builds a notifier that authenticates with apiKey as a bearer token
func NewResendNotifier(apiKey, from string, timeout time.Duration, opts ...ResendOption) (*ResendNotifier, error) {
	if apiKey == "" {
		return nil, errors.New("resend notifier: empty api key")
	}
	if from == "" {
		return nil, errors.New("resend notifier: empty sender")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey, TokenType: "Bearer"})
	client := oauth2.NewClient(context.Background(), ts)
	client.Timeout = timeout

	n := &ResendNotifier{
		url:    DefaultMailAPIURL,
		from:   from,
		client: client,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NotifyAssigned sends the new-assignment e-mail
func (n *ResendNotifier) NotifyAssigned(ctx context.Context, msg Message) error {
	return n.send(ctx, KindAssigned, msg)
}

// NotifyUpdated sends the assignment-changed e-mail
func (n *ResendNotifier) NotifyUpdated(ctx context.Context, msg Message) error {
	return n.send(ctx, KindUpdated, msg)
}

// NotifyCancelled sends the assignment-cancelled e-mail
func (n *ResendNotifier) NotifyCancelled(ctx context.Context, msg Message) error {
	return n.send(ctx, KindCancelled, msg)
}

func (n *ResendNotifier) send(ctx context.Context, kind Kind, msg Message) error {
	if len(msg.To) == 0 {
		return &apperrors.DeliveryError{Channel: mailChannel, Err: errors.New("no recipients")}
	}
	html, err := Render(kind, msg)
	if err != nil {
		return &apperrors.DeliveryError{Channel: mailChannel, Err: err}
	}
	body, err := json.Marshal(resendPayload{
		From:    n.from,
		To:      msg.To,
		Subject: Subject(kind),
		HTML:    html,
	})
	if err != nil {
		return &apperrors.DeliveryError{Channel: mailChannel, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return &apperrors.DeliveryError{Channel: mailChannel, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return &apperrors.DeliveryError{Channel: mailChannel, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &apperrors.DeliveryError{
			Channel:    mailChannel,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("mail api rejected message: %s", bytes.TrimSpace(detail)),
		}
	}
	return nil
}
