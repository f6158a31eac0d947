package deal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dealfinder/internal/domain/entity"
)

const (
	metricsNamespace = "dealfinder"

	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeSourceError = "source_error"
)

// Metrics is safe to use as a nil pointer; nothing is recorded then.
type Metrics struct {
	searches *prometheus.CounterVec
	listings prometheus.Histogram
	deals    prometheus.Histogram
	scores   prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "searches_total",
			Help:      "Deal searches by outcome.",
		}, []string{"outcome"}),
		listings: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "listings_per_search",
			Help:      "Candidate listings produced by the listing source per search.",
			Buckets:   prometheus.LinearBuckets(0, 1, 6), //nolint:mnd
		}),
		deals: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "deals_per_search",
			Help:      "Deals returned per search.",
			Buckets:   prometheus.LinearBuckets(0, 1, 6), //nolint:mnd
		}),
		scores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "deal_score",
			Help:      "Scores of returned deals.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11), //nolint:mnd
		}),
	}
}

func (m *Metrics) searchDone(outcome string) {
	if m == nil {
		return
	}

	m.searches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observe(listings []entity.RawListing, deals []entity.Deal) {
	if m == nil {
		return
	}

	m.listings.Observe(float64(len(listings)))
	m.deals.Observe(float64(len(deals)))

	for _, d := range deals {
		m.scores.Observe(float64(d.DealScore))
	}
}
