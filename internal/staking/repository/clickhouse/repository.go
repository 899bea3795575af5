// Package clickhouse exports analyzer results to ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

type Repository struct {
	conn    Conn
	network model.Network
	metrics Metrics
}

func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, network: network, metrics: metrics}, nil
}

// Ping verifies the connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// Close releases the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// Export stores the classified transactions and the provider ranking of one run.
func (r *Repository) Export(ctx context.Context, start, end uint64, group *model.StakerGroup, ranking model.ProviderRanking) error {
	if err := r.InsertStakingTransactions(ctx, group); err != nil {
		return err
	}
	return r.InsertProviderRankings(ctx, start, end, ranking)
}

// driverConn narrows driver.Conn to Conn.
type driverConn struct {
	conn driver.Conn
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c driverConn) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
