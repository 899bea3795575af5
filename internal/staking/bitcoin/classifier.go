package bitcoin

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/payload"
)

// Classifier selects staking transactions from blocks and computes their fees.
type Classifier struct {
	resolver InputResolver
	logger   *zap.Logger
}

// NewClassifier constructs a Classifier.
func NewClassifier(resolver InputResolver, logger *zap.Logger) *Classifier {
	return &Classifier{
		resolver: resolver,
		logger:   logger,
	}
}

// Classify walks the transactions of blocks in order and groups the ones carrying
// a staking payload by staker public key. The first transaction of every block is
// the coinbase and is never looked at.
func (c *Classifier) Classify(ctx context.Context, blocks []btcjson.GetBlockVerboseTxResult) (*model.StakerGroup, error) {
	group := model.NewStakerGroup()
	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(block.Tx) < 2 {
			continue
		}
		for _, tx := range block.Tx[1:] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			classified, ok := c.classify(ctx, block.Height, tx)
			if !ok {
				continue
			}
			group.Add(classified)
		}
	}
	return group, nil
}

func (c *Classifier) classify(ctx context.Context, height int64, tx btcjson.TxRawResult) (model.ClassifiedTransaction, bool) {
	script, ok := firstOpReturn(tx.Vout)
	if !ok {
		return model.ClassifiedTransaction{}, false
	}
	decoded, ok := payload.Decode(script)
	if !ok {
		c.logger.Debug("op_return is not a staking payload", zap.String("txid", tx.Txid))
		return model.ClassifiedTransaction{}, false
	}

	var totalOut btcutil.Amount
	for idx, out := range tx.Vout {
		value, err := BtcToAmount(out.Value)
		if err != nil {
			c.logger.Warn("skipping transaction with invalid output value",
				zap.String("txid", tx.Txid), zap.Int("vout", idx), zap.Error(err))
			return model.ClassifiedTransaction{}, false
		}
		totalOut += value
	}

	var (
		totalIn    btcutil.Amount
		unresolved int
	)
	for _, in := range tx.Vin {
		value, ok := c.resolver.Resolve(ctx, in.Txid, in.Vout)
		if !ok {
			unresolved++
			continue
		}
		totalIn += value
	}
	if unresolved > 0 {
		c.logger.Warn("fee computed with unresolved inputs",
			zap.String("txid", tx.Txid), zap.Int("unresolved", unresolved))
	}

	return model.NewClassifiedTransaction(tx.Txid, height, totalIn, totalOut, unresolved, decoded), true
}

// firstOpReturn returns the script hex of the first OP_RETURN output.
func firstOpReturn(outs []btcjson.Vout) (string, bool) {
	for _, out := range outs {
		if isOpReturn(out.ScriptPubKey) {
			return out.ScriptPubKey.Hex, true
		}
	}
	return "", false
}
