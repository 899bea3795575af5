// Package bitcoin implements Bitcoin-specific acquisition and classification of staking transactions.
package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

const opReturnAsmPrefix = "OP_RETURN"

// BtcToAmount converts a BTC value reported by the node to satoshis.
func BtcToAmount(value float64) (btcutil.Amount, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return amt, nil
}

// isOpReturn reports whether the output script disassembles to an OP_RETURN script.
// The node's asm is used when present, otherwise the raw script is disassembled.
func isOpReturn(script btcjson.ScriptPubKeyResult) bool {
	asm := script.Asm
	if asm == "" && script.Hex != "" {
		raw, err := hex.DecodeString(script.Hex)
		if err != nil {
			return false
		}
		// a malformed push still yields the leading opcodes
		asm, _ = txscript.DisasmString(raw)
	}
	return strings.HasPrefix(asm, opReturnAsmPrefix)
}
