package hash

import (
	"fmt"
	"math/big"

	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/model"
)

// MidSquareHashAlgorithm - The slot selection is implemented by squaring the projected key with
// arbitrary precision and taking the d digits centered in the decimal string of the square, where
// d is the digit width of the highest slot position. Native floating point must never be used for
// the square since projected keys may exceed the safe integer range.
type MidSquareHashAlgorithm struct {
	tableSize int
}

// NewMidSquareHashAlgorithm - Returns a pointer to a new MidSquareHashAlgorithm instance
func NewMidSquareHashAlgorithm(tableSize int) *MidSquareHashAlgorithm {
	ha := &MidSquareHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm
func (M *MidSquareHashAlgorithm) SetTableSize(tableSize int) {
	M.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (M *MidSquareHashAlgorithm) GetTableSize() int {
	return M.tableSize
}

// Slot - Given projected key k it generates a slot number between 1 and table size (inclusive)
func (M *MidSquareHashAlgorithm) Slot(k *big.Int) (slot int, meta model.HashMeta) {
	squared := new(big.Int).Mul(k, k)
	s := squared.String()
	d := slotDigits(M.tableSize)

	// When the square has fewer digits than d the whole string is used
	central := s
	if len(s) > d {
		start := (len(s) - d) / 2
		central = s[start : start+d]
	}

	value, _ := new(big.Int).SetString(central, 10)
	slot = modSlot(value, M.tableSize)

	meta = model.HashMeta{
		Method:  crt.HashMethodName(crt.MidSquareHashing),
		Key:     k.String(),
		Squared: s,
		Central: central,
		Value:   value.String(),
		Slot:    slot,
		Formula: fmt.Sprintf("%s² = %s, central %d digit(s) = %s, (%s mod %d) + 1 = %d",
			k.String(), s, d, central, value.String(), M.tableSize, slot),
	}

	return
}
