package bitcoin

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-staking/pkg/safe"
)

const (
	lookupCacheHit   = "cache_hit"
	lookupRPC        = "rpc"
	lookupUnresolved = "unresolved"
)

// FeeResolver looks up the value of previous outputs spent by transaction inputs.
// Successful lookups are memoized in the injected cache for the whole run.
type FeeResolver struct {
	rpc     NodeClient
	caller  *Caller
	cache   ValueCache
	metrics FeeResolverMetrics
	logger  *zap.Logger
}

// NewFeeResolver constructs a FeeResolver.
func NewFeeResolver(rpc NodeClient, caller *Caller, cache ValueCache, metrics FeeResolverMetrics, logger *zap.Logger) *FeeResolver {
	return &FeeResolver{
		rpc:     rpc,
		caller:  caller,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// ValueOf returns the value of output vout of txid, or zero when it cannot be resolved.
func (r *FeeResolver) ValueOf(ctx context.Context, txid string, vout uint32) btcutil.Amount {
	value, _ := r.Resolve(ctx, txid, vout)
	return value
}

// Resolve returns the value of output vout of txid. It reports false, with a
// zero value, when the transaction or the output index cannot be resolved.
func (r *FeeResolver) Resolve(ctx context.Context, txid string, vout uint32) (btcutil.Amount, bool) {
	key := OutputKey{TxID: txid, Vout: vout}
	if value, ok := r.cache.Get(key); ok {
		r.observe(lookupCacheHit)
		return value, true
	}

	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		r.logger.Warn("invalid input txid", zap.String("txid", txid), zap.Error(err))
		r.observe(lookupUnresolved)
		return 0, false
	}

	tx, ok := call(ctx, r.caller, "get_raw_transaction", func() (*btcjson.TxRawResult, error) {
		return r.rpc.GetRawTransactionVerbose(hash)
	})
	if !ok || tx == nil {
		r.logger.Warn("input value unresolved, counting as zero",
			zap.String("txid", txid), zap.Uint32("vout", vout))
		r.observe(lookupUnresolved)
		return 0, false
	}

	// every output of the fetched transaction is cached; siblings are often spent in the same range
	var (
		value btcutil.Amount
		found bool
	)
	for idx, out := range tx.Vout {
		index, err := safe.Uint32(idx)
		if err != nil {
			break
		}
		amount, err := BtcToAmount(out.Value)
		if err != nil {
			r.logger.Warn("invalid output value", zap.String("txid", txid), zap.Uint32("vout", index), zap.Error(err))
			continue
		}
		r.cache.Set(OutputKey{TxID: txid, Vout: index}, amount)
		if index == vout {
			value, found = amount, true
		}
	}
	if !found {
		r.logger.Warn("input references missing output, counting as zero",
			zap.String("txid", txid), zap.Uint32("vout", vout), zap.Int("outputs", len(tx.Vout)))
		r.observe(lookupUnresolved)
		return 0, false
	}

	r.observe(lookupRPC)
	return value, true
}

func (r *FeeResolver) observe(result string) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveLookup(result)
}
