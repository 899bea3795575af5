package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

var feeResolverLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "fee_resolver",
	Name:      "lookups_total",
	Help:      "Count of input value lookups by result (cache_hit, rpc, unresolved).",
}, []string{"network", "result"})

// FeeResolver tracks input value lookups.
type FeeResolver struct {
	network model.Network
}

// NewFeeResolver creates a FeeResolver metrics collector.
func NewFeeResolver(network model.Network) *FeeResolver {
	return &FeeResolver{network: orUnknown(network)}
}

// ObserveLookup counts one lookup.
func (m FeeResolver) ObserveLookup(result string) {
	feeResolverLookupsTotal.WithLabelValues(string(m.network), result).Inc()
}
