package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/chain"
	"github.com/goodnatureofminers/blockinsight7000-staking/pkg/safe"
)

// DefaultHeightDelay is the pause between consecutive heights.
const DefaultHeightDelay = time.Second

// BlockSource fetches full blocks for a height range. The collected blocks are
// persisted to the snapshot, skipped heights included, and served from it on the
// next run.
type BlockSource struct {
	rpc      NodeClient
	caller   *Caller
	snapshot BlockSnapshot
	metrics  BlockSourceMetrics
	delay    time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
	logger   *zap.Logger
}

// NewBlockSource constructs a BlockSource. A nil snapshot disables resumption.
func NewBlockSource(
	rpc NodeClient,
	caller *Caller,
	snapshot BlockSnapshot,
	metrics BlockSourceMetrics,
	delay time.Duration,
	logger *zap.Logger,
) *BlockSource {
	return &BlockSource{
		rpc:      rpc,
		caller:   caller,
		snapshot: snapshot,
		metrics:  metrics,
		delay:    delay,
		sleep:    clock.SleepWithContext,
		logger:   logger,
	}
}

// Fetch returns the blocks for heights start..end inclusive in ascending order.
// Heights whose hash or body stay unavailable after retries are skipped and reported
// in the result. Only a canceled context aborts the fetch.
func (s *BlockSource) Fetch(ctx context.Context, start, end uint64) (*chain.FetchResult, error) {
	if start > end {
		return nil, fmt.Errorf("invalid height range %d..%d", start, end)
	}
	if _, err := safe.Int64(end); err != nil {
		return nil, fmt.Errorf("block height %d exceeds rpc limit: %w", end, err)
	}

	if blocks, ok := s.loadSnapshot(); ok {
		s.logger.Info("loaded blocks from snapshot", zap.Int("blocks", len(blocks)))
		return &chain.FetchResult{Blocks: blocks, FromSnapshot: true}, nil
	}

	result := &chain.FetchResult{
		Blocks: make([]btcjson.GetBlockVerboseTxResult, 0, end-start+1),
	}
	for height := start; ; height++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		started := time.Now()
		block, err := s.fetchHeight(ctx, height)
		if s.metrics != nil {
			s.metrics.ObserveHeight(err, height, started)
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.logger.Warn("skipping block height", zap.Uint64("height", height), zap.Error(err))
			result.Skipped = append(result.Skipped, chain.SkippedHeight{Height: height, Err: err})
		} else {
			s.logger.Info("fetched block",
				zap.Uint64("height", height),
				zap.String("hash", block.Hash),
				zap.Int("txs", len(block.Tx)),
			)
			result.Blocks = append(result.Blocks, *block)
		}

		if height == end {
			break
		}
		if err := s.sleep(ctx, s.delay); err != nil {
			return nil, err
		}
	}

	s.saveSnapshot(result)
	return result, nil
}

func (s *BlockSource) fetchHeight(ctx context.Context, height uint64) (*btcjson.GetBlockVerboseTxResult, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return nil, err
	}
	hash, ok := call(ctx, s.caller, "get_block_hash", func() (*chainhash.Hash, error) {
		return s.rpc.GetBlockHash(h)
	})
	if !ok || hash == nil {
		return nil, fmt.Errorf("height %d: %w", height, chain.ErrBlockHashUnavailable)
	}
	block, ok := call(ctx, s.caller, "get_block", func() (*btcjson.GetBlockVerboseTxResult, error) {
		return s.rpc.GetBlockVerboseTx(hash)
	})
	if !ok || block == nil {
		return nil, fmt.Errorf("block %s at height %d: %w", hash, height, chain.ErrBlockUnavailable)
	}
	return block, nil
}

func (s *BlockSource) loadSnapshot() ([]btcjson.GetBlockVerboseTxResult, bool) {
	if s.snapshot == nil {
		return nil, false
	}
	blocks, ok, err := s.snapshot.Load()
	if err != nil {
		s.logger.Warn("block snapshot unreadable, fetching from node", zap.Error(err))
		ok = false
	}
	if s.metrics != nil {
		s.metrics.ObserveSnapshot(ok)
	}
	return blocks, ok
}

func (s *BlockSource) saveSnapshot(result *chain.FetchResult) {
	if s.snapshot == nil {
		return
	}
	if len(result.Skipped) > 0 {
		s.logger.Warn("block snapshot written with skipped heights",
			zap.Uint64s("skipped_heights", result.SkippedHeights()))
	}
	if err := s.snapshot.Save(result.Blocks); err != nil {
		s.logger.Error("save block snapshot", zap.Error(err))
	}
}
