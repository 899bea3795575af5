package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/btcsuite/btcd/btcjson"
)

// BlockSnapshot stores a fetched block range as a JSON array of verbose blocks.
type BlockSnapshot struct {
	path string
}

// NewBlockSnapshot returns a snapshot backed by path.
func NewBlockSnapshot(path string) *BlockSnapshot {
	return &BlockSnapshot{path: path}
}

// Load returns the stored blocks. It reports false without error when no snapshot exists.
func (s *BlockSnapshot) Load() ([]btcjson.GetBlockVerboseTxResult, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read block snapshot: %w", err)
	}

	var blocks []btcjson.GetBlockVerboseTxResult
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, false, fmt.Errorf("decode block snapshot %s: %w", s.path, err)
	}
	return blocks, true, nil
}

// Save replaces the snapshot with blocks.
func (s *BlockSnapshot) Save(blocks []btcjson.GetBlockVerboseTxResult) error {
	if blocks == nil {
		blocks = []btcjson.GetBlockVerboseTxResult{}
	}
	data, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("encode block snapshot: %w", err)
	}
	return writeAtomic(s.path, data)
}
