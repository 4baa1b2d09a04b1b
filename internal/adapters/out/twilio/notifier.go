// Package twilio implements the outbound customer notification port over the
// Twilio SMS REST API. Sends are best-effort: every failure is logged and
// swallowed, nothing is retried, and missing credentials degrade the notifier
// to a logged no-op instead of a startup failure.
package twilio

import (
	"context"
	"fmt"
	"log/slog"

	"parceltrack/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Config carries the provider credentials and the public base URL embedded
// in the share-location link.
type Config struct {
	AccountSID    string
	AuthToken     string
	FromNumber    string
	PublicBaseURL string
}

// Enabled reports whether all three provider credentials are present.
func (c Config) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// messageCreator is the slice of the Twilio API the notifier uses.
type messageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// SMSNotifier implements ports.Notifier by sending text messages through
// Twilio. A nil api means credentials were missing at startup and every send
// is a logged no-op returning false.
type SMSNotifier struct {
	api     messageCreator
	from    string
	baseURL string
	logger  *slog.Logger
}

// NewSMSNotifier creates the notifier. When cfg.Enabled() is false the
// returned notifier logs and drops every message instead of failing startup.
func NewSMSNotifier(cfg Config, logger *slog.Logger) *SMSNotifier {
	n := &SMSNotifier{
		from:    cfg.FromNumber,
		baseURL: cfg.PublicBaseURL,
		logger:  logger.With("component", "sms_notifier"),
	}

	if !cfg.Enabled() {
		n.logger.Warn("Twilio credentials are not fully configured, customer notifications disabled")
		return n
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	n.api = client.Api
	return n
}

// DeliveryCreated sends the registration message with the share-location link.
func (n *SMSNotifier) DeliveryCreated(ctx context.Context, d *delivery.Delivery) bool {
	body := fmt.Sprintf(
		"Your parcel has been received!\nOrder ID: %s\nPlease share your location: %s/share/%s",
		d.OrderID(), n.baseURL, d.OrderID(),
	)
	return n.send(ctx, d.CustomerContact(), body)
}

// LocationReceived confirms that the customer's position was stored.
func (n *SMSNotifier) LocationReceived(ctx context.Context, d *delivery.Delivery) bool {
	body := fmt.Sprintf("✅ Delivery Bot received your location! Order ID: %s", d.OrderID())
	return n.send(ctx, d.CustomerContact(), body)
}

// DeliveryCompleted sends the delivered confirmation.
func (n *SMSNotifier) DeliveryCompleted(ctx context.Context, d *delivery.Delivery) bool {
	body := fmt.Sprintf("✅ Your parcel (Order %s) has been delivered!", d.OrderID())
	return n.send(ctx, d.CustomerContact(), body)
}

// DeliveryFailed sends the failure/support message.
func (n *SMSNotifier) DeliveryFailed(ctx context.Context, d *delivery.Delivery) bool {
	body := fmt.Sprintf("⚠️ Delivery failed for Order %s. Please contact support.", d.OrderID())
	return n.send(ctx, d.CustomerContact(), body)
}

// send pushes one message to the provider. Returns true only on confirmed
// acceptance. The generated reference id ties the attempt to its log lines.
func (n *SMSNotifier) send(ctx context.Context, to, body string) bool {
	ref := uuid.NewString()

	if n.api == nil {
		n.logger.WarnContext(ctx, "SMS dropped: notifier disabled", "ref", ref, "to", to)
		return false
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	msg, err := n.api.CreateMessage(params)
	if err != nil {
		n.logger.ErrorContext(ctx, "SMS send failed", "ref", ref, "to", to, "error", err)
		return false
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	n.logger.InfoContext(ctx, "SMS sent", "ref", ref, "to", to, "sid", sid)
	return true
}
