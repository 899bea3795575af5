package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
	"github.com/goodnatureofminers/blockinsight7000-staking/pkg/safe"
)

// InsertProviderRankings stores ranking for the height range start..end. Rank starts at 1.
func (r *Repository) InsertProviderRankings(ctx context.Context, start, end uint64, ranking model.ProviderRanking) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("insert_provider_rankings", r.network, err, started)
	}()

	if len(ranking) == 0 {
		return nil
	}

	const query = `
INSERT INTO provider_rankings (
	network,
	range_start,
	range_end,
	rank,
	fp_public_key,
	transaction_count,
	total_fee
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare provider rankings batch: %w", err)
	}

	for i, entry := range ranking {
		var rank, count uint32
		var totalFee uint64
		if rank, err = safe.Uint32(i + 1); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("provider %s rank: %w", entry.FPPublicKey, err)
		}
		if count, err = safe.Uint32(entry.Stats.TransactionCount); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("provider %s transaction count: %w", entry.FPPublicKey, err)
		}
		if totalFee, err = safe.Uint64(entry.Stats.TotalFee); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("provider %s total fee: %w", entry.FPPublicKey, err)
		}
		if err = batch.Append(
			string(r.network),
			start,
			end,
			rank,
			entry.FPPublicKey,
			count,
			totalFee,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append provider %s: %w", entry.FPPublicKey, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert provider rankings: %w", err)
	}
	return nil
}
