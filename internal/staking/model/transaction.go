package model

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// ClassifiedTransaction is a staking commitment transaction with its reconstructed fee.
type ClassifiedTransaction struct {
	TxID        string
	BlockHeight int64
	TotalInput  btcutil.Amount
	TotalOutput btcutil.Amount
	Fee         btcutil.Amount
	// UnresolvedInputs counts inputs whose value could not be looked up and were counted as zero.
	UnresolvedInputs int
	Payload          DecodedPayload
}

// NewClassifiedTransaction builds a ClassifiedTransaction, deriving the fee from the totals.
func NewClassifiedTransaction(
	txid string,
	blockHeight int64,
	totalInput, totalOutput btcutil.Amount,
	unresolvedInputs int,
	payload DecodedPayload,
) ClassifiedTransaction {
	return ClassifiedTransaction{
		TxID:             txid,
		BlockHeight:      blockHeight,
		TotalInput:       totalInput,
		TotalOutput:      totalOutput,
		Fee:              Fee(totalInput, totalOutput),
		UnresolvedInputs: unresolvedInputs,
		Payload:          payload,
	}
}

// Fee returns totalInput - totalOutput clamped at zero.
func Fee(totalInput, totalOutput btcutil.Amount) btcutil.Amount {
	if totalInput > totalOutput {
		return totalInput - totalOutput
	}
	return 0
}

type classifiedTransactionJSON struct {
	TxID             string         `json:"txid"`
	BlockHeight      int64          `json:"block_height"`
	TotalInput       float64        `json:"total_input"`
	TotalOutput      float64        `json:"total_output"`
	Fee              float64        `json:"fee"`
	UnresolvedInputs int            `json:"unresolved_inputs,omitempty"`
	OpReturn         DecodedPayload `json:"op_return"`
}

// MarshalJSON renders amounts in BTC, matching the node's native unit.
func (t ClassifiedTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(classifiedTransactionJSON{
		TxID:             t.TxID,
		BlockHeight:      t.BlockHeight,
		TotalInput:       t.TotalInput.ToBTC(),
		TotalOutput:      t.TotalOutput.ToBTC(),
		Fee:              t.Fee.ToBTC(),
		UnresolvedInputs: t.UnresolvedInputs,
		OpReturn:         t.Payload,
	})
}

// UnmarshalJSON parses BTC amounts back into satoshis.
func (t *ClassifiedTransaction) UnmarshalJSON(data []byte) error {
	var raw classifiedTransactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	totalInput, err := btcutil.NewAmount(raw.TotalInput)
	if err != nil {
		return fmt.Errorf("tx %s total_input: %w", raw.TxID, err)
	}
	totalOutput, err := btcutil.NewAmount(raw.TotalOutput)
	if err != nil {
		return fmt.Errorf("tx %s total_output: %w", raw.TxID, err)
	}
	fee, err := btcutil.NewAmount(raw.Fee)
	if err != nil {
		return fmt.Errorf("tx %s fee: %w", raw.TxID, err)
	}
	*t = ClassifiedTransaction{
		TxID:             raw.TxID,
		BlockHeight:      raw.BlockHeight,
		TotalInput:       totalInput,
		TotalOutput:      totalOutput,
		Fee:              fee,
		UnresolvedInputs: raw.UnresolvedInputs,
		Payload:          raw.OpReturn,
	}
	return nil
}
