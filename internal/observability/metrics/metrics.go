package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once          sync.Once
	metricsRouter *chi.Mux

	defaultHistogramBucketsSeconds = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	eventProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_event_processing_duration_seconds",
			Help:    "Ledger event processing duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"event_type", "status"},
	)

	ledgerHeadGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_head_block",
			Help: "Last head block number retrieved from the ledger",
		},
	)

	lastProcessedBlockGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "issuer_last_processed_block",
			Help: "Checkpoint block committed per issuer",
		},
		[]string{"issuer"},
	)

	batchFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_batch_failure_count",
			Help: "Number of failed sync batches per issuer",
		},
		[]string{"issuer"},
	)

	decodeErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_decode_error_count",
			Help: "Number of fatal envelope decode failures",
		},
	)

	notifierPublishErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifier_publish_error_count",
			Help: "The total number of errors when publishing sync notifications",
		},
	)

	ledgerClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_client_latency_seconds",
			Help:    "Histogram of ledger RPC latencies in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)
)

// Init starts the metrics server and registers the collectors. Collectors are
// usable before Init; only exposition requires it.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

func registerMetrics() {
	prometheus.MustRegister(
		pollerDurationHistogram,
		eventProcessingDuration,
		ledgerHeadGauge,
		lastProcessedBlockGauge,
		batchFailureCounter,
		decodeErrorCounter,
		notifierPublishErrorCounter,
		ledgerClientLatency,
		dbLatency,
	)
}

func RecordEventProcessingDuration(d time.Duration, eventType string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	eventProcessingDuration.WithLabelValues(eventType, status.String()).Observe(d.Seconds())
}

func RecordLedgerClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	ledgerClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordLedgerHead(block uint64) {
	ledgerHeadGauge.Set(float64(block))
}

func RecordLastProcessedBlock(issuerID string, block uint64) {
	lastProcessedBlockGauge.WithLabelValues(issuerID).Set(float64(block))
}

func IncBatchFailures(issuerID string) {
	batchFailureCounter.WithLabelValues(issuerID).Inc()
}

func IncDecodeErrors() {
	decodeErrorCounter.Inc()
}

func IncNotifierPublishFailures() {
	notifierPublishErrorCounter.Inc()
}
