// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"os"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
)

// NewSMSGateway constructs the gateway selected by cfg.SMS.Backend.
func NewSMSGateway(cfg config.Adapter, log *logger.Logger) (SMSGateway, error) {
	switch cfg.SMS.Backend {
	case config.SMSBackendTwilio:
		return NewTwilioGateway(cfg.SMS, cfg.RequestTimeout, log), nil
	case config.SMSBackendConsole:
		return NewConsoleGateway(os.Stdout, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSMSBackend, cfg.SMS.Backend)
	}
}
