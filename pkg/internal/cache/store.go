package cache

import (
	"github.com/dgraph-io/ristretto"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
)

// S is the shared in-process cache store used to memoize projections.
var S *ristrettoStore.RistrettoStore

func NewStore() error {
	backend, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristrettoStore.NewRistretto(backend)
	return nil
}
