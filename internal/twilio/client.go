package twilio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/pathakanu/myAssistant/internal/model"
)

// ErrNotConfigured is returned when credentials or numbers are missing.
var ErrNotConfigured = errors.New("twilio notifier not configured")

type messageCreator func(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)

// Notifier delivers due reminders as WhatsApp messages to one recipient.
type Notifier struct {
	create messageCreator
	from   string
	to     string
	render func(model.Reminder) string
	logger *log.Logger
}

// New creates a Notifier bound to the sender and recipient WhatsApp numbers.
// render turns a reminder into the message body.
func New(accountSID, authToken, fromWhatsApp, toWhatsApp string, render func(model.Reminder) string, logger *log.Logger) *Notifier {
	n := &Notifier{
		from:   normalizeWhatsAppAddress(fromWhatsApp),
		to:     normalizeWhatsAppAddress(toWhatsApp),
		render: render,
		logger: logger,
	}
	if accountSID != "" && authToken != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken})
		n.create = client.Api.CreateMessage
	}
	return n
}

// Configured reports whether Notify can send anything.
func (n *Notifier) Configured() bool {
	return n.create != nil && n.from != "" && n.to != ""
}

// Notify sends one reminder. The Twilio SDK call is not context aware, so
// ctx is only checked before sending.
func (n *Notifier) Notify(ctx context.Context, r model.Reminder) error {
	if !n.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(n.render(r))

	resp, err := n.create(params)
	if err != nil {
		return fmt.Errorf("twilio send message: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		n.logger.Printf("twilio: reminder %d sent to %s, SID %s", r.ID, n.to, *resp.Sid)
	}
	return nil
}

func normalizeWhatsAppAddress(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "whatsapp:") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return "whatsapp:" + trimmed
	}
	return "whatsapp:+" + trimmed
}
