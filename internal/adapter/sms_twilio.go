package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/utils"
)

type twilioGateway struct {
	client *utils.HTTPClient

	accountSID string
	from       string

	logger *logger.Logger
}

// twilioMessage is the part of the Messages resource the gateway reads.
type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// NewTwilioGateway constructs an [SMSGateway] that sends messages through
// the Twilio Messages API. Every send is bounded by timeout.
func NewTwilioGateway(cfg config.SMS, timeout time.Duration, log *logger.Logger) SMSGateway {
	client := utils.NewHTTPClient(timeout)
	client.
		SetBaseURL(strings.TrimRight(cfg.TwilioBaseURL, "/")).
		SetBasicAuth(cfg.TwilioAccountSID, cfg.TwilioAuthToken)

	return &twilioGateway{
		client:     client,
		accountSID: cfg.TwilioAccountSID,
		from:       cfg.TwilioFrom,
		logger:     log.Component("sms.twilio"),
	}
}

func (g *twilioGateway) Send(ctx context.Context, phoneNumber, body string) error {
	var message twilioMessage

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("sid", g.accountSID).
		SetFormData(map[string]string{
			"To":   phoneNumber,
			"From": g.from,
			"Body": body,
		}).
		SetResult(&message).
		Post("/2010-04-01/Accounts/{sid}/Messages.json")
	if err != nil {
		g.logger.Err(err).Str("func", "*twilioGateway.Send").Msg("twilio request failed")
		return fmt.Errorf("%w: %w", ErrSMSSendFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Err(err).Str("func", "*twilioGateway.Send").Msg("twilio rejected message")
		return fmt.Errorf("%w: %w", ErrSMSSendFailed, err)
	}

	g.logger.Debug().
		Str("sid", message.SID).
		Str("status", message.Status).
		Msg("sms accepted by twilio")
	return nil
}
