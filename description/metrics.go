package description

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randalmurphal/seokit/excerpt"
)

// Recorder records description metrics. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// RecordDescription records a resolved description and its length in runes.
	RecordDescription(kind Kind, source Source, length int)

	// RecordTrim records how a generated excerpt was closed.
	RecordTrim(kind Kind, rule excerpt.Rule, truncated bool)
}

// NoopRecorder discards all metrics.
type NoopRecorder struct{}

func (NoopRecorder) RecordDescription(Kind, Source, int) {}
func (NoopRecorder) RecordTrim(Kind, excerpt.Rule, bool) {}

// PrometheusRecorder implements Recorder with Prometheus collectors.
type PrometheusRecorder struct {
	descriptions *prometheus.CounterVec
	length       *prometheus.HistogramVec
	trims        *prometheus.CounterVec
}

var (
	defaultRecorder     *PrometheusRecorder
	defaultRecorderOnce sync.Once
)

// NewPrometheusRecorder returns the recorder registered with the default
// Prometheus registry. Repeated calls share one instance.
func NewPrometheusRecorder() *PrometheusRecorder {
	defaultRecorderOnce.Do(func() {
		defaultRecorder = NewPrometheusRecorderWith(prometheus.DefaultRegisterer)
	})
	return defaultRecorder
}

// NewPrometheusRecorderWith creates a recorder registered with reg.
// Collectors already registered under the same names are reused.
func NewPrometheusRecorderWith(reg prometheus.Registerer) *PrometheusRecorder {
	return &PrometheusRecorder{
		descriptions: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seo_descriptions_total",
			Help: "Descriptions resolved, by kind and source",
		}, []string{"kind", "source"})),
		length: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seo_description_length_characters",
			Help:    "Distribution of description lengths in characters (Unicode runes)",
			Buckets: []float64{0, 45, 80, 120, 160, 200, 250, 300, 320},
		}, []string{"kind"})),
		trims: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seo_excerpt_trims_total",
			Help: "Generated excerpts trimmed, by kind, closing rule and truncation",
		}, []string{"kind", "rule", "truncated"})),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

// RecordDescription implements Recorder.
func (p *PrometheusRecorder) RecordDescription(kind Kind, source Source, length int) {
	p.descriptions.WithLabelValues(kind.String(), source.String()).Inc()
	if source != SourceNone {
		p.length.WithLabelValues(kind.String()).Observe(float64(length))
	}
}

// RecordTrim implements Recorder.
func (p *PrometheusRecorder) RecordTrim(kind Kind, rule excerpt.Rule, truncated bool) {
	t := "false"
	if truncated {
		t = "true"
	}
	p.trims.WithLabelValues(kind.String(), rule.String(), t).Inc()
}
