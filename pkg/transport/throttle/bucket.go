package throttle

import (
	"math"
	"sync"
	"time"

	bkerrors "github.com/vnykmshr/bufkit/pkg/common/errors"
)

// Inf is the infinite byte rate; it never throttles.
var Inf = math.Inf(1)

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Config holds configuration options for throttled capabilities.
type Config struct {
	// Rate is the number of bytes allowed per second.
	Rate float64

	// Burst is the maximum number of bytes that may pass at once.
	Burst int

	// Clock provides the current time. If nil, SystemClock is used.
	Clock Clock

	// InitialTokens is the byte budget to start with. Zero or negative
	// values start with a full bucket, values above Burst are capped.
	InitialTokens int

	// EmptyStart starts with no budget at all, overriding InitialTokens.
	EmptyStart bool
}

// bucket is a token bucket counting bytes.
type bucket struct {
	mu         sync.Mutex
	rate       float64
	burst      int
	tokens     float64
	lastUpdate time.Time
	clock      Clock
}

func newBucket(config Config) (*bucket, error) {
	if config.Rate < 0 || math.IsNaN(config.Rate) {
		return nil, bkerrors.NewValidationError("throttle", "rate", config.Rate, "rate cannot be negative").
			WithHint("use 0 for a fixed budget or a positive bytes-per-second value")
	}
	if config.Burst <= 0 {
		return nil, bkerrors.NewValidationError("throttle", "burst", config.Burst, "burst must be positive").
			WithHint("burst bounds how many bytes may pass in a single call")
	}
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}

	initial := float64(config.Burst)
	switch {
	case config.EmptyStart:
		initial = 0
	case config.InitialTokens > 0 && config.InitialTokens < config.Burst:
		initial = float64(config.InitialTokens)
	}

	return &bucket{
		rate:       config.Rate,
		burst:      config.Burst,
		tokens:     initial,
		lastUpdate: config.Clock.Now(),
		clock:      config.Clock,
	}, nil
}

// take removes up to n whole tokens and returns how many were granted.
func (b *bucket) take(n int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n <= 0 {
		return 0
	}
	if math.IsInf(b.rate, 1) {
		return n
	}

	b.updateTokens(b.clock.Now())

	granted := int(math.Floor(b.tokens))
	if granted > n {
		granted = n
	}
	if granted <= 0 {
		return 0
	}
	b.tokens -= float64(granted)
	return granted
}

// refund returns unused tokens to the bucket.
func (b *bucket) refund(n int) {
	if n <= 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if math.IsInf(b.rate, 1) {
		return
	}
	b.tokens = math.Min(b.tokens+float64(n), float64(b.burst))
}

// available returns the number of tokens currently available.
func (b *bucket) available() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if math.IsInf(b.rate, 1) {
		return float64(b.burst)
	}
	b.updateTokens(b.clock.Now())
	return b.tokens
}

// updateTokens adds tokens based on the time elapsed since the last update.
func (b *bucket) updateTokens(now time.Time) {
	if b.rate == 0 {
		// Zero rate means no refill
		b.lastUpdate = now
		return
	}

	elapsed := now.Sub(b.lastUpdate)
	if elapsed <= 0 {
		return
	}

	b.tokens = math.Min(b.tokens+elapsed.Seconds()*b.rate, float64(b.burst))
	b.lastUpdate = now
}
