package hashfunc

import (
	"math/big"

	"github.com/gostonefire/searchtable/model"
)

// HashAlgorithm - Interface that permits an implementation using the search table to supply a custom
// slot selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a search table is created or restored from a snapshot. Hence, if a custom
	// hash algorithm is supplied and the instance is already having a table size, it will be
	// overwritten by the capacity of the table it is attached to.
	//   - tableSize is the number of slots the search table addresses
	SetTableSize(tableSize int)

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int

	// Slot - Given a projected key it generates a slot number between 1 and table size (inclusive),
	// together with the intermediate values the computation went through for trace rendering.
	// Any number returned outside that range will result in an error down stream.
	// The projected key may exceed the native integer range, implementations must not fall back to
	// floating point arithmetic.
	Slot(k *big.Int) (slot int, meta model.HashMeta)
}
