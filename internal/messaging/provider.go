// Package messaging defines the outbound message delivery capability and
// its interchangeable provider strategies. Services depend only on the
// Provider interface; the concrete strategy is chosen once at wiring time
// from configuration, so swapping channels never touches service code.
package messaging

import (
	"context"
	"fmt"

	"github.com/storefront/storefront-api/internal/config"
)

// Message is the channel-independent payload handed to a provider.
type Message struct {
	// Recipient is the channel-specific address: an email address for the
	// email provider, a phone number for sms.
	Recipient string

	// Title is the short subject line of the message.
	Title string

	// Body is the full message text.
	Body string

	// Kind carries the originating notification type for logging and
	// provider-side routing ("email", "sms", "push").
	Kind string
}

// Receipt describes a completed delivery attempt.
type Receipt struct {
	// Provider is the name of the strategy that handled the message.
	Provider string `json:"provider"`

	// Recipient echoes the address the message was sent to.
	Recipient string `json:"recipient"`

	// MessageID is the provider-assigned identifier for the delivery.
	MessageID string `json:"message_id"`
}

// Provider is the capability contract for delivering a message over one
// channel. Implementations must be safe for concurrent use.
type Provider interface {
	// Send delivers the message and returns a receipt describing the
	// delivery. An error means the message was not handed off; partial
	// delivery states are the provider's problem to avoid.
	Send(ctx context.Context, msg Message) (*Receipt, error)
}

// NewProvider selects the delivery strategy named in the configuration.
// This is the single place a concrete strategy is chosen; everything else
// sees only the Provider interface.
func NewProvider(cfg config.MessagingConfig) (Provider, error) {
	switch cfg.Provider {
	case "email":
		return NewEmailProvider(cfg.SenderAddress), nil
	case "sms":
		return NewSMSProvider(cfg.SenderNumber), nil
	case "console":
		return NewConsoleProvider(), nil
	default:
		return nil, fmt.Errorf("unknown messaging provider %q", cfg.Provider)
	}
}
