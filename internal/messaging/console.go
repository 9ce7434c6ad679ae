package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/platform/logger"
)

// ConsoleProvider writes messages to the structured log instead of an
// external channel. It is the default strategy for development and tests.
type ConsoleProvider struct{}

// NewConsoleProvider creates a console delivery strategy.
func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

var _ Provider = (*ConsoleProvider)(nil)

// Send implements Provider.Send.
func (p *ConsoleProvider) Send(ctx context.Context, msg Message) (*Receipt, error) {
	log := logger.FromContext(ctx)

	messageID := fmt.Sprintf("console_%s", uuid.New())

	log.Info("console message delivered",
		slog.String("kind", msg.Kind),
		slog.String("recipient", msg.Recipient),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.String("message_id", messageID))

	return &Receipt{
		Provider:  "console",
		Recipient: msg.Recipient,
		MessageID: messageID,
	}, nil
}
