package crt

import "fmt"

// DefaultStrategy - Falls back to the collision resolution technique the search table was created with
const DefaultStrategy int = 0

// LinearProbing - Collision Resolution Technique where probing is done one slot at a time from the home slot
const LinearProbing int = 1

// QuadraticProbing - Collision Resolution Technique where probing advances by successive squares from the home slot
const QuadraticProbing int = 2

// DoubleHashing - Collision Resolution Technique where the next slot is obtained by re-applying the
// active hash method to the current slot number plus one, as if it were a fresh projected key
const DoubleHashing int = 3

// ModuloHashing - Hash method taking the projected key modulo the table size
const ModuloHashing int = 1

// MidSquareHashing - Hash method taking the central digits of the squared projected key
const MidSquareHashing int = 2

// FoldingHashing - Hash method summing fixed width digit blocks of the projected key
const FoldingHashing int = 3

// TruncationHashing - Hash method picking digits at every other position of the projected key
const TruncationHashing int = 4

// NumericKeys - Keys are decimal digits only, left zero padded to the configured key length
const NumericKeys int = 1

// TextKeys - Keys are letters (including accented ones) and spaces
const TextKeys int = 2

// AlphanumericKeys - Keys are letters (including accented ones) and digits, no spaces or symbols
const AlphanumericKeys int = 3

// StrategyName - Returns the serialized name of a collision resolution technique
func StrategyName(strategy int) string {
	switch strategy {
	case LinearProbing:
		return "linear"
	case QuadraticProbing:
		return "quadratic"
	case DoubleHashing:
		return "double-hash"
	default:
		return ""
	}
}

// ParseStrategy - Returns the collision resolution technique given its serialized name
func ParseStrategy(name string) (strategy int, err error) {
	switch name {
	case "linear":
		strategy = LinearProbing
	case "quadratic":
		strategy = QuadraticProbing
	case "double-hash":
		strategy = DoubleHashing
	default:
		err = fmt.Errorf("unknown collision resolution technique: %s", name)
	}

	return
}

// HashMethodName - Returns the serialized name of a hash method
func HashMethodName(hashMethod int) string {
	switch hashMethod {
	case ModuloHashing:
		return "modulo"
	case MidSquareHashing:
		return "mid-square"
	case FoldingHashing:
		return "folding"
	case TruncationHashing:
		return "truncation"
	default:
		return ""
	}
}

// ParseHashMethod - Returns the hash method given its serialized name
func ParseHashMethod(name string) (hashMethod int, err error) {
	switch name {
	case "modulo":
		hashMethod = ModuloHashing
	case "mid-square":
		hashMethod = MidSquareHashing
	case "folding":
		hashMethod = FoldingHashing
	case "truncation":
		hashMethod = TruncationHashing
	default:
		err = fmt.Errorf("unknown hash method: %s", name)
	}

	return
}

// DataTypeName - Returns the serialized name of a key data type
func DataTypeName(dataType int) string {
	switch dataType {
	case NumericKeys:
		return "numeric"
	case TextKeys:
		return "text"
	case AlphanumericKeys:
		return "alphanumeric"
	default:
		return ""
	}
}

// ParseDataType - Returns the key data type given its serialized name
func ParseDataType(name string) (dataType int, err error) {
	switch name {
	case "numeric":
		dataType = NumericKeys
	case "text":
		dataType = TextKeys
	case "alphanumeric":
		dataType = AlphanumericKeys
	default:
		err = fmt.Errorf("unknown key data type: %s", name)
	}

	return
}
