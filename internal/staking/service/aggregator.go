// Package service wires block acquisition, classification and aggregation into analyzer runs.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

// Aggregate totals the fees of every transaction in group per finality provider key
// and ranks providers by total fee, highest first.
func Aggregate(group *model.StakerGroup) model.ProviderRanking {
	agg := make(model.ProviderAggregate)
	if group == nil {
		return agg.Rank()
	}
	for _, key := range group.Keys() {
		for _, tx := range group.Transactions(key) {
			agg.Add(tx.Payload.FPPublicKey, tx.Fee)
		}
	}
	return agg.Rank()
}

// Reranker rebuilds the provider ranking from a previously written grouped-by-staker file.
type Reranker struct {
	reader  StakerGroupReader
	writer  ResultWriter
	metrics PipelineMetrics
	logger  *zap.Logger
}

// NewReranker constructs a Reranker.
func NewReranker(reader StakerGroupReader, writer ResultWriter, metrics PipelineMetrics, logger *zap.Logger) (*Reranker, error) {
	if metrics == nil {
		return nil, errors.New("reranker metrics is required")
	}
	return &Reranker{
		reader:  reader,
		writer:  writer,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Run loads the staker groups, aggregates them and writes the ranking file.
func (r *Reranker) Run(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var group *model.StakerGroup
	err := observeStage(r.metrics, stageLoadGroups, func() (err error) {
		group, err = r.reader.LoadStakerGroups()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load staker groups: %w", err)
	}

	ranking := Aggregate(group)
	if err := observeStage(r.metrics, stageWriteRanking, func() error {
		return r.writer.WriteProviderRanking(ranking)
	}); err != nil {
		return nil, fmt.Errorf("write provider ranking: %w", err)
	}

	report := &Report{
		StakingTransactions: group.TransactionCount(),
		Stakers:             group.Len(),
		Ranking:             ranking,
	}
	r.metrics.ObserveResult(report.StakingTransactions, len(ranking), 0)
	r.logger.Info("ranking rebuilt",
		zap.Int("staking_transactions", report.StakingTransactions),
		zap.Int("providers", len(ranking)),
	)
	return report, nil
}

func observeStage(metrics PipelineMetrics, stage string, fn func() error) error {
	started := time.Now()
	err := fn()
	metrics.ObserveStage(stage, err, started)
	return err
}
