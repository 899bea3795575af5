// Package chain defines structs shared between block acquisition and classification.
package chain

import (
	"errors"

	"github.com/btcsuite/btcd/btcjson"
)

var (
	// ErrBlockHashUnavailable marks a height whose block hash could not be resolved.
	ErrBlockHashUnavailable = errors.New("block hash unavailable")
	// ErrBlockUnavailable marks a height whose block body could not be fetched.
	ErrBlockUnavailable = errors.New("block unavailable")
)

// FetchResult is the outcome of fetching a height range.
type FetchResult struct {
	Blocks       []btcjson.GetBlockVerboseTxResult
	Skipped      []SkippedHeight
	FromSnapshot bool
}

// SkippedHeight records a height left out of the result and why.
type SkippedHeight struct {
	Height uint64
	Err    error
}

// SkippedHeights lists the heights that were skipped in ascending order.
func (r *FetchResult) SkippedHeights() []uint64 {
	heights := make([]uint64, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		heights = append(heights, s.Height)
	}
	return heights
}
