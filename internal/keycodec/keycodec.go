package keycodec

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/gostonefire/searchtable/crt"
)

// Normalize - Validates a raw input string and turns it into a canonical fixed length key.
// Rules are checked in order: empty/blank input, grammar by data type, length.
// Numeric keys shorter than keyLength are left padded with zeros, longer ones fail. Non-numeric
// keys have to match keyLength exactly.
//   - raw is the raw input string
//   - dataType is one of crt.NumericKeys, crt.TextKeys or crt.AlphanumericKeys
//   - keyLength is the exact canonical key width
//
// It returns:
//   - key is the canonical key
//   - err is either of type crt.EmptyKey, crt.InvalidKey, crt.KeyTooLong or crt.WrongKeyLength
func Normalize(raw string, dataType int, keyLength int) (key string, err error) {
	if strings.TrimSpace(raw) == "" {
		err = crt.EmptyKey{}
		return
	}

	runes := []rune(raw)
	for _, r := range runes {
		if !validRune(r, dataType) {
			err = crt.InvalidKey{}
			return
		}
	}

	if dataType == crt.NumericKeys {
		if len(runes) > keyLength {
			err = crt.KeyTooLong{}
			return
		}
		key = strings.Repeat("0", keyLength-len(runes)) + raw
		return
	}

	if len(runes) != keyLength {
		err = crt.WrongKeyLength{}
		return
	}

	key = raw

	return
}

// Project - Maps a canonical key to an integer. Numeric keys are parsed as decimal values which may
// exceed the native integer range, text and alphanumeric keys project to the sum of their character
// codes. The latter mapping is lossy, anagrams collide.
func Project(key string, dataType int) (k *big.Int) {
	if dataType == crt.NumericKeys {
		k, _ = new(big.Int).SetString(key, 10)
		return
	}

	k = new(big.Int)
	for _, r := range key {
		k.Add(k, big.NewInt(int64(r)))
	}

	return
}

// Compare - Compares two canonical keys character code by character code. A key that is a strict
// prefix of the other sorts first. Numeric keys are zero padded to equal width, so this yields
// correct numeric ordering without precision loss.
// It returns a negative number if a sorts before b, zero if equal, and a positive number otherwise.
func Compare(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}

	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			return int(ra[i]) - int(rb[i])
		}
	}

	return len(ra) - len(rb)
}

// validRune - Reports whether a single character conforms to the grammar of the given data type
func validRune(r rune, dataType int) bool {
	switch dataType {
	case crt.NumericKeys:
		return r >= '0' && r <= '9'
	case crt.TextKeys:
		return unicode.IsLetter(r) || r == ' '
	case crt.AlphanumericKeys:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	default:
		return false
	}
}
