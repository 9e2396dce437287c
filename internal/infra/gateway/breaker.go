package gateway

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"
)

const CircuitOpenMessage = "payment provider unavailable: circuit open"

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case stateClosed:
		return "closed"
	case stateOpen:
		return "open"
	default:
		return "half-open"
	}
}

// CircuitBreaker trips on results flagged Unavailable. Provider rejections
// count as healthy answers.
type CircuitBreaker struct {
	next  commands.PaymentGateway
	cfg   config.BreakerConfig
	clock clock.Clock

	mu           sync.Mutex
	state        breakerState
	failures     int
	successes    int
	openedAt     time.Time
	halfInFlight bool
}

func NewCircuitBreaker(next commands.PaymentGateway, cfg config.BreakerConfig, clk clock.Clock) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 1
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &CircuitBreaker{next: next, cfg: cfg, clock: clk, state: stateClosed}
}

func (b *CircuitBreaker) Initiate(ctx context.Context, req commands.PaymentRequest) commands.GatewayResult {
	if !b.allow() {
		return openResult()
	}
	res := b.next.Initiate(ctx, req)
	b.record(res)
	return res
}

func (b *CircuitBreaker) Verify(ctx context.Context, ref payment.Reference) commands.GatewayResult {
	if !b.allow() {
		return openResult()
	}
	res := b.next.Verify(ctx, ref)
	b.record(res)
	return res
}

func openResult() commands.GatewayResult {
	return commands.GatewayResult{Success: false, Error: CircuitOpenMessage, Unavailable: true}
}

func (b *CircuitBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return true
	case stateOpen:
		if b.clock.Now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return false
		}
		b.transition(stateHalfOpen)
		b.successes = 0
		b.halfInFlight = false
		fallthrough
	case stateHalfOpen:
		// one probe at a time
		if b.halfInFlight {
			return false
		}
		b.halfInFlight = true
		return true
	default:
		return false
	}
}

func (b *CircuitBreaker) record(res commands.GatewayResult) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateHalfOpen {
		b.halfInFlight = false
	}

	if !res.Unavailable {
		switch b.state {
		case stateClosed:
			b.failures = 0
		case stateHalfOpen:
			b.successes++
			if b.successes >= b.cfg.SuccessThreshold {
				b.transition(stateClosed)
				b.failures = 0
				b.successes = 0
			}
		}
		return
	}

	switch b.state {
	case stateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	case stateHalfOpen:
		b.trip()
	}
}

func (b *CircuitBreaker) trip() {
	b.transition(stateOpen)
	b.openedAt = b.clock.Now()
	b.successes = 0
	b.halfInFlight = false
}

func (b *CircuitBreaker) transition(to breakerState) {
	if b.state == to {
		return
	}
	slog.Warn("Payment gateway circuit state changed", "from", b.state.String(), "to", to.String())
	b.state = to
}
