package hash

import (
	"fmt"
	"math/big"

	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/model"
)

// ModuloHashAlgorithm - The slot selection is implemented by taking the projected key modulo the
// table size, plus one to land in the one based slot range.
type ModuloHashAlgorithm struct {
	tableSize int
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(tableSize int) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm
func (M *ModuloHashAlgorithm) SetTableSize(tableSize int) {
	M.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (M *ModuloHashAlgorithm) GetTableSize() int {
	return M.tableSize
}

// Slot - Given projected key k it generates a slot number between 1 and table size (inclusive)
func (M *ModuloHashAlgorithm) Slot(k *big.Int) (slot int, meta model.HashMeta) {
	slot = modSlot(k, M.tableSize)

	meta = model.HashMeta{
		Method:  crt.HashMethodName(crt.ModuloHashing),
		Key:     k.String(),
		Value:   k.String(),
		Slot:    slot,
		Formula: fmt.Sprintf("(%s mod %d) + 1 = %d", k.String(), M.tableSize, slot),
	}

	return
}
