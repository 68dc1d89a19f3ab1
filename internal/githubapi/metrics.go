package githubapi

import (
	"sync/atomic"
	"time"
)

// Metrics tracks calls made by one Client.
type Metrics struct {
	calls   atomic.Int64
	errors  atomic.Int64
	latency atomic.Int64 // total nanoseconds
}

type MetricsSnapshot struct {
	Calls            int64   `json:"calls"`
	Errors           int64   `json:"errors"`
	AverageLatencyMs float64 `json:"avg_latency_ms"`
	ErrorRatePct     float64 `json:"error_rate_pct"`
}

func (m *Metrics) record(d time.Duration, err error) {
	m.calls.Add(1)
	m.latency.Add(d.Nanoseconds())
	if err != nil {
		m.errors.Add(1)
	}
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Calls:  m.calls.Load(),
		Errors: m.errors.Load(),
	}
	if s.Calls > 0 {
		s.AverageLatencyMs = float64(m.latency.Load()) / float64(s.Calls) / 1e6
	}
	return s
}

// ErrorRate returns failed calls as a percentage.
func (s MetricsSnapshot) ErrorRate() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Calls) * 100
}
