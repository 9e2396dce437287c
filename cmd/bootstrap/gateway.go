package bootstrap

import (
	"travel-booking/internal/infra/gateway"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

// NewPaymentGateway wraps the Chapa client in a circuit breaker.
func NewPaymentGateway(payment config.PaymentConfig, breaker config.BreakerConfig, clk clock.Clock) commands.PaymentGateway {
	return gateway.NewCircuitBreaker(gateway.NewChapaClient(payment), breaker, clk)
}
