package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	datasetRows          prometheus.Gauge
	datasetLoadDuration  prometheus.Histogram
	comparisonsTotal     *prometheus.CounterVec
	comparisonPairsTotal *prometheus.CounterVec
	comparisonDuration   prometheus.Histogram
	wordCloudDuration    prometheus.Histogram
	wordCloudCacheTotal  *prometheus.CounterVec
}

var (
	metricsOnce     sync.Once
	metricsInstance *PrometheusMetrics
)

// NewPrometheusMetrics returns the process-wide recorder; promauto registers
// every collector on first use only.
func NewPrometheusMetrics() MetricsRecorderInterface {
	metricsOnce.Do(func() {
		metricsInstance = newPrometheusMetrics()
	})
	return metricsInstance
}

func newPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		datasetRows: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "dataset_rows",
				Help: "Number of claim lines in the loaded dataset",
			},
		),
		datasetLoadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dataset_load_duration_seconds",
				Help:    "Time spent reading the dataset workbook",
				Buckets: prometheus.DefBuckets,
			},
		),
		comparisonsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comparisons_total",
				Help: "Total number of confirm actions by outcome",
			},
			[]string{"outcome"},
		),
		comparisonPairsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comparison_pairs_total",
				Help: "Total number of comparison tabs rendered by outcome",
			},
			[]string{"outcome"},
		),
		comparisonDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "comparison_duration_milliseconds",
				Help:    "Comparison rendering duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		wordCloudDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordcloud_render_duration_milliseconds",
				Help:    "Word cloud layout and encoding duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		wordCloudCacheTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordcloud_cache_total",
				Help: "Word cloud cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "comparisons_total":
		if outcome := tags["outcome"]; outcome != "" {
			m.comparisonsTotal.WithLabelValues(outcome).Inc()
		}
	case "comparison_pairs_total":
		if outcome := tags["outcome"]; outcome != "" {
			m.comparisonPairsTotal.WithLabelValues(outcome).Inc()
		}
	case "wordcloud_cache_total":
		if result := tags["result"]; result != "" {
			m.wordCloudCacheTotal.WithLabelValues(result).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "comparison":
		m.comparisonDuration.Observe(float64(duration.Milliseconds()))
	case "wordcloud_render":
		m.wordCloudDuration.Observe(float64(duration.Milliseconds()))
	case "dataset_load":
		m.datasetLoadDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "dataset_rows":
		m.datasetRows.Set(value)
	}
}
