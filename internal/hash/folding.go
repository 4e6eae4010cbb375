package hash

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/model"
)

// FoldingHashAlgorithm - The slot selection is implemented by splitting the decimal string of the
// projected key into consecutive blocks of d digits (the last block may be short), summing the
// blocks and keeping the last d digits of the sum, where d is the digit width of the highest slot
// position.
type FoldingHashAlgorithm struct {
	tableSize int
}

// NewFoldingHashAlgorithm - Returns a pointer to a new FoldingHashAlgorithm instance
func NewFoldingHashAlgorithm(tableSize int) *FoldingHashAlgorithm {
	ha := &FoldingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm
func (F *FoldingHashAlgorithm) SetTableSize(tableSize int) {
	F.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (F *FoldingHashAlgorithm) GetTableSize() int {
	return F.tableSize
}

// Slot - Given projected key k it generates a slot number between 1 and table size (inclusive)
func (F *FoldingHashAlgorithm) Slot(k *big.Int) (slot int, meta model.HashMeta) {
	s := k.String()
	d := slotDigits(F.tableSize)

	var blocks []string
	for i := 0; i < len(s); i += d {
		end := i + d
		if end > len(s) {
			end = len(s)
		}
		blocks = append(blocks, s[i:end])
	}

	sum := new(big.Int)
	for _, block := range blocks {
		v, _ := new(big.Int).SetString(block, 10)
		sum.Add(sum, v)
	}

	sumStr := sum.String()
	last := sumStr
	if len(sumStr) > d {
		last = sumStr[len(sumStr)-d:]
	}

	value, _ := new(big.Int).SetString(last, 10)
	slot = modSlot(value, F.tableSize)

	meta = model.HashMeta{
		Method:   crt.HashMethodName(crt.FoldingHashing),
		Key:      s,
		Blocks:   blocks,
		BlockSum: sumStr,
		Value:    value.String(),
		Slot:     slot,
		Formula: fmt.Sprintf("%s = %s, last %d digit(s) = %s, (%s mod %d) + 1 = %d",
			strings.Join(blocks, " + "), sumStr, d, last, value.String(), F.tableSize, slot),
	}

	return
}
