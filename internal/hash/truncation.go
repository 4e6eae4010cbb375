package hash

import (
	"fmt"
	"math/big"

	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/model"
)

// TruncationHashAlgorithm - The slot selection is implemented by picking the digits at the even
// string positions of the decimal projected key (display positions 1, 3, 5, ...) until d digits
// have been collected, where d is the digit width of the highest slot position. Keys with fewer
// pickable digits use whatever was collected.
type TruncationHashAlgorithm struct {
	tableSize int
}

// NewTruncationHashAlgorithm - Returns a pointer to a new TruncationHashAlgorithm instance
func NewTruncationHashAlgorithm(tableSize int) *TruncationHashAlgorithm {
	ha := &TruncationHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm
func (T *TruncationHashAlgorithm) SetTableSize(tableSize int) {
	T.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (T *TruncationHashAlgorithm) GetTableSize() int {
	return T.tableSize
}

// Slot - Given projected key k it generates a slot number between 1 and table size (inclusive)
func (T *TruncationHashAlgorithm) Slot(k *big.Int) (slot int, meta model.HashMeta) {
	s := k.String()
	d := slotDigits(T.tableSize)

	picked := make([]byte, 0, d)
	for i := 0; i < len(s) && len(picked) < d; i += 2 {
		picked = append(picked, s[i])
	}

	value, _ := new(big.Int).SetString(string(picked), 10)
	slot = modSlot(value, T.tableSize)

	meta = model.HashMeta{
		Method:  crt.HashMethodName(crt.TruncationHashing),
		Key:     s,
		Picked:  string(picked),
		Value:   value.String(),
		Slot:    slot,
		Formula: fmt.Sprintf("picked digits of %s = %s, (%s mod %d) + 1 = %d",
			s, string(picked), value.String(), T.tableSize, slot),
	}

	return
}
