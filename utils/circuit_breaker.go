// ABOUTME: Circuit breaker guarding calls to the Fitbit API
// ABOUTME: Opens after repeated failures so broken upstreams are not hammered

package utils

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// CircuitBreakerState represents the current state of the circuit breaker
type CircuitBreakerState int

const (
	StateClosed CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrCircuitBreakerOpen is returned when the circuit breaker rejects a call.
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig holds configuration for the circuit breaker
type CircuitBreakerConfig struct {
	// Consecutive failures before the breaker opens.
	FailureThreshold int
	// Successes in half-open before the breaker closes again.
	SuccessThreshold int
	// How long the breaker stays open before probing.
	Timeout time.Duration
	// Concurrent probe requests allowed in half-open.
	MaxRequests int
}

// DefaultCircuitBreakerConfig returns a default circuit breaker configuration
func DefaultCircuitBreakerConfig() *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// CircuitBreaker protects an upstream dependency from repeated calls while
// it is failing. A scheduled worker behind an open breaker fails fast and
// retries on a later tick.
type CircuitBreaker struct {
	config *CircuitBreakerConfig
	logger *slog.Logger

	mu               sync.Mutex
	state            CircuitBreakerState
	failureCount     int
	successCount     int
	nextRetry        time.Time
	halfOpenRequests int
}

// NewCircuitBreaker creates a new circuit breaker
func NewCircuitBreaker(config *CircuitBreakerConfig, logger *slog.Logger) *CircuitBreaker {
	if config == nil {
		config = DefaultCircuitBreakerConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CircuitBreaker{
		config: config,
		logger: logger,
		state:  StateClosed,
	}
}

// Execute runs operation if the breaker allows it, recording the outcome.
func (cb *CircuitBreaker) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	if !cb.allowRequest() {
		cb.logger.Debug("Circuit breaker rejected request", "state", cb.GetState().String())
		return ErrCircuitBreakerOpen
	}

	err := operation(ctx)
	if err != nil {
		cb.onFailure(err)
	} else {
		cb.onSuccess()
	}
	return err
}

func (cb *CircuitBreaker) allowRequest() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true
	case StateOpen:
		if time.Now().After(cb.nextRetry) {
			cb.setState(StateHalfOpen)
			cb.halfOpenRequests++
			return true
		}
		return false
	case StateHalfOpen:
		if cb.halfOpenRequests < cb.config.MaxRequests {
			cb.halfOpenRequests++
			return true
		}
		return false
	default:
		return false
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failureCount = 0
	case StateHalfOpen:
		cb.successCount++
		cb.halfOpenRequests--
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.setState(StateClosed)
		}
	}
}

func (cb *CircuitBreaker) onFailure(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failureCount++
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.logger.Warn("Circuit breaker opening due to failures",
				"failure_count", cb.failureCount,
				"error", err)
			cb.setState(StateOpen)
		}
	case StateHalfOpen:
		// Any failure while probing re-opens the circuit.
		cb.halfOpenRequests--
		cb.logger.Warn("Circuit breaker re-opening from half-open state", "error", err)
		cb.setState(StateOpen)
	}
}

// setState must be called with cb.mu held.
func (cb *CircuitBreaker) setState(newState CircuitBreakerState) {
	oldState := cb.state
	cb.state = newState

	switch newState {
	case StateClosed:
		cb.failureCount = 0
		cb.successCount = 0
		cb.halfOpenRequests = 0
	case StateOpen:
		cb.nextRetry = time.Now().Add(cb.config.Timeout)
		cb.successCount = 0
		cb.halfOpenRequests = 0
	case StateHalfOpen:
		cb.successCount = 0
		cb.halfOpenRequests = 0
	}

	cb.logger.Info("Circuit breaker state transition",
		"from", oldState.String(),
		"to", newState.String())
}

// GetState returns the current state of the circuit breaker
func (cb *CircuitBreaker) GetState() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Reset returns the breaker to the closed state.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.setState(StateClosed)
}
