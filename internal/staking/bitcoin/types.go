package bitcoin

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the subset of the node RPC surface used by the analyzer.
	NodeClient interface {
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerboseTx(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// BlockSnapshot persists a fetched block range between runs.
	BlockSnapshot interface {
		Load() ([]btcjson.GetBlockVerboseTxResult, bool, error)
		Save(blocks []btcjson.GetBlockVerboseTxResult) error
	}

	BlockSourceMetrics interface {
		ObserveHeight(err error, height uint64, started time.Time)
		ObserveSnapshot(hit bool)
	}

	// ValueCache memoizes resolved output values for the lifetime of a run.
	ValueCache interface {
		Get(key OutputKey) (btcutil.Amount, bool)
		Set(key OutputKey, value btcutil.Amount)
	}

	FeeResolverMetrics interface {
		ObserveLookup(result string)
	}

	// InputResolver resolves the value of a previous output spent by an input.
	InputResolver interface {
		Resolve(ctx context.Context, txid string, vout uint32) (btcutil.Amount, bool)
	}
)
