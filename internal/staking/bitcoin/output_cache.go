package bitcoin

import (
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/patrickmn/go-cache"
)

// OutputKey identifies a transaction output.
type OutputKey struct {
	TxID string
	Vout uint32
}

func (k OutputKey) String() string {
	return k.TxID + ":" + strconv.FormatUint(uint64(k.Vout), 10)
}

// OutputValueCache memoizes output values for one run. Entries never expire:
// confirmed outputs are immutable. Safe for concurrent use.
type OutputValueCache struct {
	store *cache.Cache
}

// NewOutputValueCache returns an empty cache without a cleanup janitor.
func NewOutputValueCache() *OutputValueCache {
	return &OutputValueCache{store: cache.New(cache.NoExpiration, 0)}
}

// Get returns the cached value for key.
func (c *OutputValueCache) Get(key OutputKey) (btcutil.Amount, bool) {
	value, found := c.store.Get(key.String())
	if !found {
		return 0, false
	}
	amount, ok := value.(btcutil.Amount)
	return amount, ok
}

// Set stores the value for key.
func (c *OutputValueCache) Set(key OutputKey, value btcutil.Amount) {
	c.store.Set(key.String(), value, cache.NoExpiration)
}

// Len returns the number of cached outputs.
func (c *OutputValueCache) Len() int {
	return c.store.ItemCount()
}
