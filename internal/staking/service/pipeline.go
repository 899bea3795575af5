package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/chain"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

const (
	stageFetch        = "fetch"
	stageClassify     = "classify"
	stageWriteGroups  = "write_groups"
	stageWriteRanking = "write_ranking"
	stageLoadGroups   = "load_groups"
	stageExport       = "export"
)

// Report summarizes one analyzer run.
type Report struct {
	Start               uint64
	End                 uint64
	Blocks              int
	FromSnapshot        bool
	SkippedHeights      []uint64
	StakingTransactions int
	Stakers             int
	UnresolvedInputs    int
	Ranking             model.ProviderRanking
}

// Pipeline runs a full analysis over a height range.
type Pipeline struct {
	source     BlockSource
	classifier Classifier
	writer     ResultWriter
	exporter   Exporter
	metrics    PipelineMetrics
	logger     *zap.Logger
}

// NewPipeline builds a Pipeline. exporter may be nil.
func NewPipeline(
	source BlockSource,
	classifier Classifier,
	writer ResultWriter,
	exporter Exporter,
	metrics PipelineMetrics,
	logger *zap.Logger,
) (*Pipeline, error) {
	if metrics == nil {
		return nil, errors.New("pipeline metrics is required")
	}
	return &Pipeline{
		source:     source,
		classifier: classifier,
		writer:     writer,
		exporter:   exporter,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Run fetches heights start..end, classifies staking transactions, writes the
// grouped-by-staker file, then ranks providers and writes the ranking file.
// Skipped heights are reported, not treated as failures.
func (p *Pipeline) Run(ctx context.Context, start, end uint64) (*Report, error) {
	logger := p.logger.With(zap.Uint64("start", start), zap.Uint64("end", end))

	var fetched *chain.FetchResult
	err := observeStage(p.metrics, stageFetch, func() (err error) {
		fetched, err = p.source.Fetch(ctx, start, end)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch blocks: %w", err)
	}
	skipped := fetched.SkippedHeights()
	if len(skipped) > 0 {
		logger.Warn("heights skipped, results are partial",
			zap.Int("skipped", len(skipped)),
			zap.Uint64s("heights", skipped),
		)
	}

	var group *model.StakerGroup
	err = observeStage(p.metrics, stageClassify, func() (err error) {
		group, err = p.classifier.Classify(ctx, fetched.Blocks)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("classify transactions: %w", err)
	}

	if err := observeStage(p.metrics, stageWriteGroups, func() error {
		return p.writer.WriteStakerGroups(group)
	}); err != nil {
		return nil, fmt.Errorf("write staker groups: %w", err)
	}

	ranking := Aggregate(group)
	if err := observeStage(p.metrics, stageWriteRanking, func() error {
		return p.writer.WriteProviderRanking(ranking)
	}); err != nil {
		return nil, fmt.Errorf("write provider ranking: %w", err)
	}

	if p.exporter != nil {
		if err := observeStage(p.metrics, stageExport, func() error {
			return p.exporter.Export(ctx, start, end, group, ranking)
		}); err != nil {
			return nil, fmt.Errorf("export results: %w", err)
		}
	}

	report := &Report{
		Start:               start,
		End:                 end,
		Blocks:              len(fetched.Blocks),
		FromSnapshot:        fetched.FromSnapshot,
		SkippedHeights:      skipped,
		StakingTransactions: group.TransactionCount(),
		Stakers:             group.Len(),
		UnresolvedInputs:    unresolvedInputs(group),
		Ranking:             ranking,
	}
	p.metrics.ObserveResult(report.StakingTransactions, len(ranking), len(skipped))
	logger.Info("analysis complete",
		zap.Int("blocks", report.Blocks),
		zap.Bool("from_snapshot", report.FromSnapshot),
		zap.Int("staking_transactions", report.StakingTransactions),
		zap.Int("stakers", report.Stakers),
		zap.Int("providers", len(ranking)),
		zap.Int("unresolved_inputs", report.UnresolvedInputs),
	)
	return report, nil
}

func unresolvedInputs(group *model.StakerGroup) int {
	total := 0
	for _, key := range group.Keys() {
		for _, tx := range group.Transactions(key) {
			total += tx.UnresolvedInputs
		}
	}
	return total
}
