package searchtable

import (
	"github.com/gostonefire/searchtable/internal/keycodec"
	"github.com/gostonefire/searchtable/model"
)

// HashInsert - Normalizes the raw key, projects it to an integer and places it through the given
// collision resolution technique. Occupied slots visited on the way are recorded as collision
// steps in the trace.
//   - raw is the raw input string
//   - strategy is a crt collision resolution technique constant, crt.DefaultStrategy falls back
//     to the technique the table was created with
//
// It returns:
//   - result with Success set and the zero based position the key was placed at
//   - err is either a validation error from the key codec, of type crt.TableFull or
//     crt.ProbingExhausted, or a configuration error for an unknown technique
func (S *SearchTable) HashInsert(raw string, strategy int) (result model.Result, err error) {
	result = model.Result{Position: -1}

	resolver, err := S.resolver(strategy)
	if err != nil {
		return
	}

	key, err := S.normalizeKey(raw, true)
	if err != nil {
		return
	}

	result, err = resolver.Insert(S.slots, key, keycodec.Project(key, S.dataType))
	if err != nil {
		return
	}

	S.count++

	return
}

// HashSearch - Normalizes the raw key, projects it and walks the probe sequence of the given
// technique. A miss is reported through Result.Found, not as an error.
//   - raw is the raw input string
//   - strategy is a crt collision resolution technique constant, crt.DefaultStrategy falls back
//     to the technique the table was created with
func (S *SearchTable) HashSearch(raw string, strategy int) (result model.Result, err error) {
	result = model.Result{Position: -1}

	resolver, err := S.resolver(strategy)
	if err != nil {
		return
	}

	key, err := S.normalizeKey(raw, false)
	if err != nil {
		return
	}

	result, err = resolver.Search(S.slots, key, keycodec.Project(key, S.dataType))

	return
}

// HashDelete - Locates the key through the given technique and clears its slot outright, no
// tombstone is left behind. Subsequent searches over the affected probe chain may terminate early
// on the gap this creates, exactly as the early exit rules describe. A miss is reported through
// Result, not as an error.
//   - raw is the raw input string
//   - strategy is a crt collision resolution technique constant, crt.DefaultStrategy falls back
//     to the technique the table was created with
func (S *SearchTable) HashDelete(raw string, strategy int) (result model.Result, err error) {
	result = model.Result{Position: -1}

	resolver, err := S.resolver(strategy)
	if err != nil {
		return
	}

	key, err := S.normalizeKey(raw, false)
	if err != nil {
		return
	}

	result, err = resolver.Delete(S.slots, key, keycodec.Project(key, S.dataType))
	if result.Success {
		S.count--
	}

	return
}

// HashMethod - Returns the crt hash method constant the table was created with
func (S *SearchTable) HashMethod() int {
	return S.hashMethod
}

// CollisionStrategy - Returns the crt collision resolution technique constant the table was
// created with
func (S *SearchTable) CollisionStrategy() int {
	return S.collisionStrategy
}

// DataType - Returns the crt key data type constant the table was created with
func (S *SearchTable) DataType() int {
	return S.dataType
}
