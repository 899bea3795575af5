package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/chain"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		Fetch(ctx context.Context, start, end uint64) (*chain.FetchResult, error)
	}
	Classifier interface {
		Classify(ctx context.Context, blocks []btcjson.GetBlockVerboseTxResult) (*model.StakerGroup, error)
	}
	ResultWriter interface {
		WriteStakerGroups(group *model.StakerGroup) error
		WriteProviderRanking(ranking model.ProviderRanking) error
	}
	StakerGroupReader interface {
		LoadStakerGroups() (*model.StakerGroup, error)
	}
	// Exporter receives the results of a run in addition to the result files.
	Exporter interface {
		Export(ctx context.Context, start, end uint64, group *model.StakerGroup, ranking model.ProviderRanking) error
	}
	PipelineMetrics interface {
		ObserveStage(stage string, err error, started time.Time)
		ObserveResult(transactions, providers, skippedHeights int)
	}
)
