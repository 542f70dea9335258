package adapter

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/thingsfree/internal/logger"
)

type consoleGateway struct {
	mu  sync.Mutex
	out io.Writer

	logger *logger.Logger
}

// NewConsoleGateway constructs an [SMSGateway] for development: messages are
// printed to out instead of being sent. Only the recipient reaches the
// structured log.
func NewConsoleGateway(out io.Writer, log *logger.Logger) SMSGateway {
	return &consoleGateway{
		out:    out,
		logger: log.Component("sms.console"),
	}
}

func (g *consoleGateway) Send(ctx context.Context, phoneNumber, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSMSSendFailed, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := fmt.Fprintf(g.out, "SMS to %s: %s\n", phoneNumber, body); err != nil {
		return fmt.Errorf("%w: %w", ErrSMSSendFailed, err)
	}

	g.logger.Info().Str("phone_number", phoneNumber).Msg("sms printed to console")
	return nil
}
