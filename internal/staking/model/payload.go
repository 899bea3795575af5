package model

// DecodedPayload holds the fixed-width hex fields of a staking OP_RETURN commitment.
type DecodedPayload struct {
	MagicBytes      string `json:"magic_bytes"`
	Version         string `json:"version"`
	StakerPublicKey string `json:"staker_public_key"`
	FPPublicKey     string `json:"fp_public_key"`
	StakingTime     string `json:"staking_time"`
}

// Hex reassembles the payload fields in wire order.
func (p DecodedPayload) Hex() string {
	return p.MagicBytes + p.Version + p.StakerPublicKey + p.FPPublicKey + p.StakingTime
}
