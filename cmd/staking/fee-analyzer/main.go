// Package main runs the staking fee analyzer: it scans a block range for staking
// commitments, groups them by staker and ranks finality providers by fees paid.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/repository/file"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/service"
)

const (
	modeFull      = "full"
	modeAggregate = "aggregate"
)

type config struct {
	Mode          string        `long:"mode" env:"STAKING_FEES_MODE" description:"full runs fetch, classify and rank; aggregate re-ranks the grouped file" choice:"full" choice:"aggregate" default:"full"`
	StartHeight   uint64        `long:"start-height" env:"STAKING_FEES_START_HEIGHT" description:"first block height, inclusive" default:"857910"`
	EndHeight     uint64        `long:"end-height" env:"STAKING_FEES_END_HEIGHT" description:"last block height, inclusive" default:"857916"`
	Network       model.Network `long:"network" env:"STAKING_FEES_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" choice:"signet" choice:"regtest" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"STAKING_FEES_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"STAKING_FEES_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"STAKING_FEES_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCTimeout    time.Duration `long:"rpc-timeout" env:"STAKING_FEES_RPC_TIMEOUT" description:"timeout of a single RPC request" default:"30s"`
	RetryAttempts int           `long:"retry-attempts" env:"STAKING_FEES_RETRY_ATTEMPTS" description:"attempts per RPC call, each attempt is one HTTP request" default:"3"`
	RetryDelay    time.Duration `long:"retry-delay" env:"STAKING_FEES_RETRY_DELAY" description:"delay between RPC attempts" default:"5s"`
	RateLimit     int           `long:"rate-limit" env:"STAKING_FEES_RATE_LIMIT" description:"max RPC requests per second, 0 disables" default:"0"`
	HeightDelay   time.Duration `long:"height-delay" env:"STAKING_FEES_HEIGHT_DELAY" description:"pause between consecutive heights" default:"1s"`
	BlocksFile    string        `long:"blocks-file" env:"STAKING_FEES_BLOCKS_FILE" description:"block snapshot file" default:"downloaded_blocks.json"`
	GroupsFile    string        `long:"groups-file" env:"STAKING_FEES_GROUPS_FILE" description:"grouped-by-staker output file" default:"grouped_transactions.json"`
	RankingFile   string        `long:"ranking-file" env:"STAKING_FEES_RANKING_FILE" description:"ranked-by-provider output file" default:"grouped_by_fp_sorted.json"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"STAKING_FEES_CLICKHOUSE_DSN" description:"ClickHouse DSN, results are exported when set"`
	MetricsAddr   string        `long:"metrics-addr" env:"STAKING_FEES_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
	PrintTop      int           `long:"print-top" env:"STAKING_FEES_PRINT_TOP" description:"number of ranked providers to log" default:"10"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := parseConfig(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("staking fee analyzer failed", zap.Error(err))
	}
}

func parseConfig(cfg *config, args []string) error {
	_, err := flags.ParseArgs(cfg, args)
	return err
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	store := file.NewResultStore(cfg.GroupsFile, cfg.RankingFile)
	pipelineMetrics := metrics.NewPipeline(cfg.Network)

	var (
		report *service.Report
		err    error
	)
	switch cfg.Mode {
	case modeAggregate:
		report, err = runAggregate(ctx, store, pipelineMetrics, logger)
	default:
		report, err = runFull(ctx, cfg, store, pipelineMetrics, logger)
	}
	if err != nil {
		return err
	}

	printRanking(logger, report.Ranking, cfg.PrintTop)
	return nil
}

func runAggregate(ctx context.Context, store *file.ResultStore, pipelineMetrics *metrics.Pipeline, logger *zap.Logger) (*service.Report, error) {
	reranker, err := service.NewReranker(store, store, pipelineMetrics, logger.Named("reranker"))
	if err != nil {
		return nil, err
	}
	return reranker.Run(ctx)
}

func runFull(
	ctx context.Context,
	cfg config,
	store *file.ResultStore,
	pipelineMetrics *metrics.Pipeline,
	logger *zap.Logger,
) (*service.Report, error) {
	if cfg.StartHeight > cfg.EndHeight {
		return nil, fmt.Errorf("start height %d is above end height %d", cfg.StartHeight, cfg.EndHeight)
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, cfg.RPCTimeout)
	if err != nil {
		return nil, fmt.Errorf("init rpc client: %w", err)
	}
	logger.Info("using bitcoin node", zap.String("endpoint", rpcClient.Endpoint()))

	var exporter service.Exporter
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse connection", zap.Error(err))
			}
		}()
		if err := repo.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping clickhouse: %w", err)
		}
		exporter = repo
	}

	rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network))
	caller := bitcoin.NewCaller(
		bitcoin.RetryPolicy{MaxAttempts: cfg.RetryAttempts, Delay: cfg.RetryDelay},
		cfg.RateLimit,
		logger.Named("rpc"),
	)
	source := bitcoin.NewBlockSource(
		rpc,
		caller,
		file.NewBlockSnapshot(cfg.BlocksFile),
		metrics.NewBlockSource(cfg.Network),
		cfg.HeightDelay,
		logger.Named("blockSource"),
	)
	resolver := bitcoin.NewFeeResolver(
		rpc,
		caller,
		bitcoin.NewOutputValueCache(),
		metrics.NewFeeResolver(cfg.Network),
		logger.Named("feeResolver"),
	)
	classifier := bitcoin.NewClassifier(resolver, logger.Named("classifier"))

	pipeline, err := service.NewPipeline(source, classifier, store, exporter, pipelineMetrics, logger.Named("pipeline"))
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx, cfg.StartHeight, cfg.EndHeight)
}

func printRanking(logger *zap.Logger, ranking model.ProviderRanking, top int) {
	if top <= 0 {
		return
	}
	if top > len(ranking) {
		top = len(ranking)
	}
	for i, entry := range ranking[:top] {
		logger.Info("provider",
			zap.Int("rank", i+1),
			zap.String("fp_public_key", entry.FPPublicKey),
			zap.Int("transaction_count", entry.Stats.TransactionCount),
			zap.String("total_fee", entry.Stats.TotalFee.String()),
		)
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
