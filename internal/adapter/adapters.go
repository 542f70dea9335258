package adapter

import (
	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
)

// Adapters aggregates the outbound integrations the services depend on.
type Adapters struct {
	SMSGateway      SMSGateway
	SocialProviders SocialProviders
}

func NewAdapters(cfg config.StructuredConfig, log *logger.Logger) (*Adapters, error) {
	gateway, err := NewSMSGateway(cfg.Adapter, log.Component("sms"))
	if err != nil {
		return nil, err
	}

	return &Adapters{
		SMSGateway:      gateway,
		SocialProviders: NewSocialProviders(cfg.Adapter, cfg.Auth.LoginRedirectURL, log.Component("social")),
	}, nil
}
