package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// StakerGroup maps staker public keys to their classified transactions,
// remembering the order in which stakers were first seen.
type StakerGroup struct {
	keys []string
	txs  map[string][]ClassifiedTransaction
}

// NewStakerGroup returns an empty StakerGroup.
func NewStakerGroup() *StakerGroup {
	return &StakerGroup{txs: make(map[string][]ClassifiedTransaction)}
}

// Add appends tx under its payload's staker public key.
func (g *StakerGroup) Add(tx ClassifiedTransaction) {
	if g.txs == nil {
		g.txs = make(map[string][]ClassifiedTransaction)
	}
	key := tx.Payload.StakerPublicKey
	existing, ok := g.txs[key]
	if !ok {
		g.keys = append(g.keys, key)
	}
	g.txs[key] = append(existing, tx)
}

// Keys returns staker keys in first-seen order.
func (g *StakerGroup) Keys() []string {
	return append([]string(nil), g.keys...)
}

// Transactions returns the transactions recorded for a staker key in scan order.
func (g *StakerGroup) Transactions(key string) []ClassifiedTransaction {
	return g.txs[key]
}

// Len returns the number of distinct stakers.
func (g *StakerGroup) Len() int {
	return len(g.keys)
}

// TransactionCount returns the number of transactions across all stakers.
func (g *StakerGroup) TransactionCount() int {
	count := 0
	for _, txs := range g.txs {
		count += len(txs)
	}
	return count
}

// MarshalJSON writes a JSON object keyed by staker public key in first-seen order.
func (g *StakerGroup) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(g.txs[key])
		if err != nil {
			return nil, fmt.Errorf("marshal staker %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object written by MarshalJSON, keeping key order.
// Every transaction must carry the staker key it is listed under.
func (g *StakerGroup) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("staker group: expected JSON object")
	}

	group := NewStakerGroup()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("staker group: unexpected key token %v", tok)
		}
		var txs []ClassifiedTransaction
		if err := dec.Decode(&txs); err != nil {
			return fmt.Errorf("staker group %s: %w", key, err)
		}
		for _, tx := range txs {
			if tx.Payload.StakerPublicKey != key {
				return fmt.Errorf("staker group %s: tx %s carries staker key %s", key, tx.TxID, tx.Payload.StakerPublicKey)
			}
			group.Add(tx)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*g = *group
	return nil
}
