// Package backoff computes retry delays from an error classification and a
// zero-based attempt index: min(base * factor^attempt, cap), with per-kind
// base/cap pairs and a default pair for unrecognized kinds.
package backoff

import (
	"math"
	"time"
)

// Kind classifies a transform failure for delay selection.
type Kind int

const (
	// KindDefault covers classifications without a configured entry.
	KindDefault Kind = iota

	// KindAPI is a service-level failure: the remote answered but the
	// payload was missing or malformed.
	KindAPI

	// KindRequest is a transport-level failure: bad status, network error.
	KindRequest
)

// Delays is the base/cap pair for one error kind.
type Delays struct {
	Base time.Duration
	Max  time.Duration
}

// Policy maps error kinds to delay schedules. The zero value is unusable;
// construct with Default or fill all fields.
type Policy struct {
	// Factor is the multiplicative growth per attempt, shared by all kinds.
	Factor float64

	// ByKind holds per-kind schedules; kinds not present use Fallback.
	ByKind map[Kind]Delays

	// Fallback serves unrecognized kinds.
	Fallback Delays
}

// Default returns the stock policy: API errors back off 1s up to 10s,
// request errors 2s up to 30s, anything else 1s up to 15s, doubling each
// attempt.
func Default() Policy {
	return Policy{
		Factor: 2.0,
		ByKind: map[Kind]Delays{
			KindAPI:     {Base: time.Second, Max: 10 * time.Second},
			KindRequest: {Base: 2 * time.Second, Max: 30 * time.Second},
		},
		Fallback: Delays{Base: time.Second, Max: 15 * time.Second},
	}
}

// Delay returns the wait before retrying the given zero-based attempt.
// Pure: same inputs always yield the same delay.
func (p Policy) Delay(kind Kind, attempt int) time.Duration {
	d, ok := p.ByKind[kind]
	if !ok {
		d = p.Fallback
	}
	if attempt < 0 {
		attempt = 0
	}

	scaled := float64(d.Base) * math.Pow(p.Factor, float64(attempt))
	if scaled >= float64(d.Max) {
		return d.Max
	}
	return time.Duration(scaled)
}
