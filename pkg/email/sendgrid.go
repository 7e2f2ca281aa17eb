package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/werealtor/aixx/pkg/config"
	"github.com/werealtor/aixx/pkg/logger"
)

// Sender delivers plain-text notification mail.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Client wraps the SendGrid v3 send endpoint. A nil Client is valid and
// drops messages, so callers can treat the provider as optional.
type Client struct {
	sg   *sendgrid.Client
	from string
}

// NewClient returns (nil, nil) when no API key is configured; contact
// submissions then persist without sending a notification.
func NewClient(ctx context.Context, cfg config.SendgridConfig, logg *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		if logg != nil {
			logg.Warn(ctx, "sendgrid api key missing, contact notifications disabled")
		}
		return nil, nil
	}

	from := strings.TrimSpace(cfg.DefaultFrom)
	if from == "" {
		return nil, fmt.Errorf("sendgrid from address is required")
	}

	if logg != nil {
		logg.Info(ctx, "sendgrid client initialized")
	}

	return &Client{
		sg:   sendgrid.NewSendClient(apiKey),
		from: from,
	}, nil
}

// Send posts one plain-text mail through SendGrid.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c == nil || c.sg == nil {
		return nil
	}
	if msg.To == "" {
		return fmt.Errorf("recipient is required")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("", c.from),
		msg.Subject,
		mail.NewEmail("", msg.To),
		msg.Body,
		"",
	)

	resp, err := c.sg.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send returned %d: %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}
	return nil
}
