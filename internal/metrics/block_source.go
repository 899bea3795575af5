// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

var (
	blockSourceHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_source",
		Name:      "heights_total",
		Help:      "Count of block heights fetched or skipped.",
	}, []string{"network", "status"})

	blockSourceHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_source",
		Name:      "height_duration_seconds",
		Help:      "Duration of fetching a single height including retries.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60},
	}, []string{"network", "status"})

	blockSourceLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_source",
		Name:      "last_height",
		Help:      "Last block height attempted.",
	}, []string{"network"})

	blockSourceSnapshotTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_source",
		Name:      "snapshot_lookups_total",
		Help:      "Count of block snapshot lookups by result.",
	}, []string{"network", "result"})
)

// BlockSource tracks metrics for block range acquisition.
type BlockSource struct {
	network model.Network
}

// NewBlockSource creates a BlockSource metrics collector.
func NewBlockSource(network model.Network) *BlockSource {
	return &BlockSource{network: orUnknown(network)}
}

// ObserveHeight records the outcome of fetching one height. Failures are skipped heights.
func (m BlockSource) ObserveHeight(err error, height uint64, started time.Time) {
	status := "fetched"
	if err != nil {
		status = "skipped"
	}
	network := string(m.network)

	blockSourceHeightsTotal.WithLabelValues(network, status).Inc()
	blockSourceHeightDuration.WithLabelValues(network, status).Observe(time.Since(started).Seconds())
	blockSourceLastHeight.WithLabelValues(network).Set(float64(height))
}

// ObserveSnapshot records whether a run was served from the block snapshot.
func (m BlockSource) ObserveSnapshot(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	blockSourceSnapshotTotal.WithLabelValues(string(m.network), result).Inc()
}
