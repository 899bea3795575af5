package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

var (
	pipelineStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "staking_pipeline",
		Name:      "stages_total",
		Help:      "Count of pipeline stage runs.",
	}, []string{"network", "stage", "status"})

	pipelineStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "staking_pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Duration of pipeline stages.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 16), // 10ms..~5.5m
	}, []string{"network", "stage", "status"})

	pipelineStakingTransactions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "staking_pipeline",
		Name:      "staking_transactions",
		Help:      "Classified staking transactions in the last run.",
	}, []string{"network"})

	pipelineProviders = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "staking_pipeline",
		Name:      "providers",
		Help:      "Ranked finality providers in the last run.",
	}, []string{"network"})

	pipelineSkippedHeights = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "staking_pipeline",
		Name:      "skipped_heights",
		Help:      "Heights skipped in the last run.",
	}, []string{"network"})
)

// Pipeline tracks metrics for analyzer runs.
type Pipeline struct {
	network model.Network
}

// NewPipeline creates a Pipeline metrics collector.
func NewPipeline(network model.Network) *Pipeline {
	return &Pipeline{network: orUnknown(network)}
}

// ObserveStage records the duration and status of a pipeline stage.
func (m Pipeline) ObserveStage(stage string, err error, started time.Time) {
	status := statusOf(err)
	network := string(m.network)

	pipelineStageTotal.WithLabelValues(network, stage, status).Inc()
	pipelineStageDuration.WithLabelValues(network, stage, status).Observe(time.Since(started).Seconds())
}

// ObserveResult records the size of a finished run.
func (m Pipeline) ObserveResult(transactions, providers, skippedHeights int) {
	network := string(m.network)

	pipelineStakingTransactions.WithLabelValues(network).Set(float64(transactions))
	pipelineProviders.WithLabelValues(network).Set(float64(providers))
	pipelineSkippedHeights.WithLabelValues(network).Set(float64(skippedHeights))
}
