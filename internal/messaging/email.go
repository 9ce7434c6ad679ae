package messaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/platform/logger"
)

// EmailProvider delivers messages over email.
//
// The actual SMTP handoff is stubbed: the provider logs the delivery and
// returns a receipt, which is enough for the rest of the system to be
// developed and tested against the real contract.
type EmailProvider struct {
	senderAddress string
}

// NewEmailProvider creates an email delivery strategy sending from the
// given address.
func NewEmailProvider(senderAddress string) *EmailProvider {
	return &EmailProvider{senderAddress: senderAddress}
}

var _ Provider = (*EmailProvider)(nil)

// Send implements Provider.Send.
func (p *EmailProvider) Send(ctx context.Context, msg Message) (*Receipt, error) {
	log := logger.FromContext(ctx)

	messageID := fmt.Sprintf("email_%s", uuid.New())

	log.Info("email message sent",
		"recipient", msg.Recipient,
		"sender", p.senderAddress,
		"title", msg.Title,
		"message_id", messageID)

	return &Receipt{
		Provider:  "email",
		Recipient: msg.Recipient,
		MessageID: messageID,
	}, nil
}
