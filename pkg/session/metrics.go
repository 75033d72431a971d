package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Restore outcomes recorded by Metrics.
const (
	ResultRestored = "restored"
	ResultAbsent   = "absent"
	ResultRejected = "rejected"
)

// Metrics counts session cookie outcomes. A nil *Metrics records nothing.
type Metrics struct {
	restores *prometheus.CounterVec
	issued   prometheus.Counter
}

// NewMetrics creates the session cookie counters and registers them with
// reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		restores: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "session_cookie",
			Name:      "restore_total",
			Help:      "Incoming session cookies by outcome",
		}, []string{"result"}),
		issued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "session_cookie",
			Name:      "issued_total",
			Help:      "Session cookies written to responses",
		}),
	}
}

func (m *Metrics) restored(result string) {
	if m == nil {
		return
	}
	m.restores.WithLabelValues(result).Inc()
}

func (m *Metrics) issuedOne() {
	if m == nil {
		return
	}
	m.issued.Inc()
}
