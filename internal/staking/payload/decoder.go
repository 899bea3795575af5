// Package payload decodes the fixed-layout staking commitment carried in an OP_RETURN output.
//
// Layout of the 71 pushed bytes, offsets counted in hex characters:
//
//	magic_bytes        0   8
//	version            8   2
//	staker_public_key  10  64
//	fp_public_key      74  64
//	staking_time       138 4
//
// Only the script prefix and the data length are checked. Any 71-byte push
// behind OP_RETURN is accepted as a commitment even if its magic bytes belong
// to another protocol, so results can contain false positives.
package payload

import (
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

const (
	// ScriptPrefix is OP_RETURN (0x6a) followed by a 71-byte push (0x47).
	ScriptPrefix = "6a47"
	// DataHexLength is the minimum number of hex characters after the prefix.
	DataHexLength = 142
)

const (
	magicEnd   = 8
	versionEnd = 10
	stakerEnd  = 74
	fpEnd      = 138
	timeEnd    = 142
)

// Decode extracts the payload fields from a hex-encoded output script.
// It reports false when the script is not a staking commitment.
func Decode(scriptHex string) (model.DecodedPayload, bool) {
	if !strings.HasPrefix(scriptHex, ScriptPrefix) {
		return model.DecodedPayload{}, false
	}
	data := scriptHex[len(ScriptPrefix):]
	if len(data) < DataHexLength {
		return model.DecodedPayload{}, false
	}

	return model.DecodedPayload{
		MagicBytes:      data[:magicEnd],
		Version:         data[magicEnd:versionEnd],
		StakerPublicKey: data[versionEnd:stakerEnd],
		FPPublicKey:     data[stakerEnd:fpEnd],
		StakingTime:     data[fpEnd:timeEnd],
	}, true
}
