package model

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// ProviderStats accumulates the staking transactions delegated to one finality provider.
type ProviderStats struct {
	TransactionCount int
	TotalFee         btcutil.Amount
}

type providerStatsJSON struct {
	TransactionCount int     `json:"transaction_count"`
	TotalFee         float64 `json:"total_fee"`
}

// MarshalJSON renders the total fee in BTC.
func (s ProviderStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(providerStatsJSON{
		TransactionCount: s.TransactionCount,
		TotalFee:         s.TotalFee.ToBTC(),
	})
}

// ProviderAggregate maps finality provider public keys to their stats.
type ProviderAggregate map[string]ProviderStats

// Add records one transaction paying fee for the provider fpKey.
func (a ProviderAggregate) Add(fpKey string, fee btcutil.Amount) {
	stats, ok := a[fpKey]
	if !ok {
		stats = ProviderStats{}
	}
	stats.TransactionCount++
	stats.TotalFee += fee
	a[fpKey] = stats
}

// Rank orders providers by total fee descending; equal fees are ordered by ascending key.
func (a ProviderAggregate) Rank() ProviderRanking {
	ranking := make(ProviderRanking, 0, len(a))
	for key, stats := range a {
		ranking = append(ranking, ProviderEntry{FPPublicKey: key, Stats: stats})
	}
	slices.SortFunc(ranking, func(x, y ProviderEntry) int {
		if c := cmp.Compare(y.Stats.TotalFee, x.Stats.TotalFee); c != 0 {
			return c
		}
		return strings.Compare(x.FPPublicKey, y.FPPublicKey)
	})
	return ranking
}

// ProviderEntry is one ranked finality provider.
type ProviderEntry struct {
	FPPublicKey string
	Stats       ProviderStats
}

// ProviderRanking is the ordered provider list produced by aggregation.
type ProviderRanking []ProviderEntry

// MarshalJSON writes a JSON object keyed by provider key, preserving rank order.
func (r ProviderRanking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(entry.FPPublicKey)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(entry.Stats)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
