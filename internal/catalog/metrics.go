package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK            = "ok"
	outcomeNotConfigured = "not_configured"
	outcomeFetchFailed   = "fetch_failed"
	outcomeDecodeFailed  = "decode_failed"
)

// Metrics tracks catalog loads. A nil *Metrics records nothing.
type Metrics struct {
	Entries     prometheus.Gauge
	Reloads     *prometheus.CounterVec
	RowsSkipped prometheus.Counter
	LastSuccess prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_entries",
			Help: "Materials in the current catalog snapshot",
		}),
		Reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Catalog load attempts by outcome",
		}, []string{"outcome"}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_rows_skipped_total",
			Help: "Sheet rows dropped for a missing name or price",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_last_success_timestamp_seconds",
			Help: "Unix time of the last successful catalog load",
		}),
	}

	reg.MustRegister(m.Entries, m.Reloads, m.RowsSkipped, m.LastSuccess)
	return m
}

func (m *Metrics) observeReload(outcome string) {
	if m == nil {
		return
	}
	m.Reloads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeSkipped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RowsSkipped.Add(float64(n))
}

func (m *Metrics) observeSnapshot(s *Snapshot) {
	if m == nil {
		return
	}
	m.Entries.Set(float64(s.Len()))
	if !s.LoadedAt.IsZero() {
		m.LastSuccess.Set(float64(s.LoadedAt.Unix()))
	}
}
