package offline

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("remote fetches suspended after repeated failures")

// BreakerState is the state of a BreakerFetcher
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// BreakerFetcher stops calling next once it has failed MaxFailures times in a
// row, and tries it again after ResetTimeout. A 5xx status counts as a failure.
type BreakerFetcher struct {
	mu                sync.Mutex
	next              FetcherInterface
	config            BreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewBreakerFetcher(next FetcherInterface, config BreakerConfig) *BreakerFetcher {
	if config.MaxFailures <= 0 {
		config.MaxFailures = DefaultBreakerConfig().MaxFailures
	}
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}
	return &BreakerFetcher{next: next, config: config, now: time.Now}
}

func (b *BreakerFetcher) Fetch(ctx context.Context, req *http.Request) (*Response, error) {
	if !b.allow() {
		return nil, ErrBreakerOpen
	}

	resp, err := b.next.Fetch(ctx, req)
	if err != nil || resp.StatusCode >= http.StatusInternalServerError {
		b.recordFailure()
		return resp, err
	}

	b.recordSuccess()
	return resp, nil
}

func (b *BreakerFetcher) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakerFetcher) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen && b.now().Sub(b.lastFailureTime) > b.config.ResetTimeout {
		b.state = BreakerHalfOpen
		b.halfOpenSuccesses = 0
	}
	return b.state != BreakerOpen
}

func (b *BreakerFetcher) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.state = BreakerClosed
			b.failures = 0
			b.halfOpenSuccesses = 0
		}
	case BreakerClosed:
		b.failures = 0
	}
}

func (b *BreakerFetcher) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureTime = b.now()

	switch b.state {
	case BreakerHalfOpen:
		b.state = BreakerOpen
		b.halfOpenSuccesses = 0
	case BreakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = BreakerOpen
		}
	}
}
