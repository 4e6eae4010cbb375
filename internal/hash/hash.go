package hash

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/gostonefire/searchtable/crt"
	hashfunc "github.com/gostonefire/searchtable/interfaces"
)

// NewHashAlgorithm - Returns the built-in hash algorithm for the given hash method.
// An unknown hash method is a configuration error, it indicates a programming error in the caller
// and aborts construction.
//   - hashMethod is one of the crt hash method constants
//   - tableSize is the number of slots the search table addresses
func NewHashAlgorithm(hashMethod int, tableSize int) (alg hashfunc.HashAlgorithm, err error) {
	switch hashMethod {
	case crt.ModuloHashing:
		alg = NewModuloHashAlgorithm(tableSize)
	case crt.MidSquareHashing:
		alg = NewMidSquareHashAlgorithm(tableSize)
	case crt.FoldingHashing:
		alg = NewFoldingHashAlgorithm(tableSize)
	case crt.TruncationHashing:
		alg = NewTruncationHashAlgorithm(tableSize)
	default:
		err = fmt.Errorf("unknown hash method: %d", hashMethod)
	}

	return
}

// slotDigits - Returns the number of decimal digits in the highest zero based slot position,
// which is the digit width d every hash method extracts or folds to.
func slotDigits(tableSize int) int {
	return len(strconv.Itoa(tableSize - 1))
}

// modSlot - Applies the final (value mod tableSize) + 1 step shared by all hash methods,
// returning a one based slot number.
func modSlot(value *big.Int, tableSize int) int {
	m := new(big.Int).Mod(value, big.NewInt(int64(tableSize)))
	return int(m.Int64()) + 1
}
