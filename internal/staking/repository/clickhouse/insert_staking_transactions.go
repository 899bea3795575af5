package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
	"github.com/goodnatureofminers/blockinsight7000-staking/pkg/safe"
)

// InsertStakingTransactions stores every classified transaction of group, amounts in satoshis.
func (r *Repository) InsertStakingTransactions(ctx context.Context, group *model.StakerGroup) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_staking_transactions", r.network, err, start)
	}()

	if group == nil || group.TransactionCount() == 0 {
		return nil
	}

	const query = `
INSERT INTO staking_transactions (
	network,
	txid,
	block_height,
	staker_public_key,
	fp_public_key,
	magic_bytes,
	version,
	staking_time,
	total_input,
	total_output,
	fee,
	unresolved_inputs
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare staking transactions batch: %w", err)
	}

	for _, key := range group.Keys() {
		for _, tx := range group.Transactions(key) {
			var row []any
			row, err = stakingTransactionRow(r.network, tx)
			if err != nil {
				_ = batch.Abort()
				return err
			}
			if err = batch.Append(row...); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("append staking transaction %s: %w", tx.TxID, err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert staking transactions: %w", err)
	}
	return nil
}

func stakingTransactionRow(network model.Network, tx model.ClassifiedTransaction) ([]any, error) {
	height, err := safe.Uint64(tx.BlockHeight)
	if err != nil {
		return nil, fmt.Errorf("tx %s block height: %w", tx.TxID, err)
	}
	totalInput, err := safe.Uint64(tx.TotalInput)
	if err != nil {
		return nil, fmt.Errorf("tx %s total input: %w", tx.TxID, err)
	}
	totalOutput, err := safe.Uint64(tx.TotalOutput)
	if err != nil {
		return nil, fmt.Errorf("tx %s total output: %w", tx.TxID, err)
	}
	fee, err := safe.Uint64(tx.Fee)
	if err != nil {
		return nil, fmt.Errorf("tx %s fee: %w", tx.TxID, err)
	}
	unresolved, err := safe.Uint32(tx.UnresolvedInputs)
	if err != nil {
		return nil, fmt.Errorf("tx %s unresolved inputs: %w", tx.TxID, err)
	}

	return []any{
		string(network),
		tx.TxID,
		height,
		tx.Payload.StakerPublicKey,
		tx.Payload.FPPublicKey,
		tx.Payload.MagicBytes,
		tx.Payload.Version,
		tx.Payload.StakingTime,
		totalInput,
		totalOutput,
		fee,
		unresolved,
	}, nil
}
