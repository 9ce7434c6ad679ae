package messaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/platform/logger"
)

// SMSProvider delivers messages over SMS.
//
// Like EmailProvider, the carrier handoff is stubbed behind the delivery
// contract: the provider logs the message and returns a receipt.
type SMSProvider struct {
	senderNumber string
}

// NewSMSProvider creates an SMS delivery strategy sending from the given
// number.
func NewSMSProvider(senderNumber string) *SMSProvider {
	return &SMSProvider{senderNumber: senderNumber}
}

var _ Provider = (*SMSProvider)(nil)

// Send implements Provider.Send.
func (p *SMSProvider) Send(ctx context.Context, msg Message) (*Receipt, error) {
	log := logger.FromContext(ctx)

	messageID := fmt.Sprintf("sms_%s", uuid.New())

	log.Info("sms message sent",
		"recipient", msg.Recipient,
		"sender", p.senderNumber,
		"message_id", messageID)

	return &Receipt{
		Provider:  "sms",
		Recipient: msg.Recipient,
		MessageID: messageID,
	}, nil
}
