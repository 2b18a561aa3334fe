// Package payment provides the simulated card gateway used until a real
// processor is integrated.
package payment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"verdeluxe/config"
	"verdeluxe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// simulatedGateway waits for the configured delay and approves every charge.
type simulatedGateway struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewSimulatedGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	var delay time.Duration
	if cfg.Checkout != nil && cfg.Checkout.PaymentDelay != nil {
		delay = *cfg.Checkout.PaymentDelay
	}

	return &simulatedGateway{delay: delay, logger: logger}
}

func (g *simulatedGateway) Charge(ctx context.Context, req *service.PaymentRequest) (*service.PaymentResult, error) {
	if req == nil || !req.Amount.IsPositive() {
		return nil, errors.New("charge amount must be positive")
	}
	if req.Method != service.PaymentMethodCard {
		return nil, errors.Errorf("unsupported payment method %q", req.Method)
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "payment interrupted")
		case <-timer.C:
		}
	}

	reference := "SIM-" + strings.ToUpper(uuid.NewString()[:8])

	g.logger.InfoContext(ctx, "Simulated payment approved",
		slog.String("order_number", req.OrderNumber),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("currency", req.Currency),
		slog.String("reference", reference),
	)

	return &service.PaymentResult{Approved: true, Reference: reference}, nil
}
