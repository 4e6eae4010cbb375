package searchtable

import (
	"fmt"

	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/internal/keycodec"
	"github.com/gostonefire/searchtable/internal/search"
	"github.com/gostonefire/searchtable/model"
)

// Insert - Normalizes the raw key and places it at the first free position. On a table used only
// through array operations that position is count itself, keeping the prefix dense for the
// sequential search. Hash operations on the same table may occupy slots beyond the prefix, those
// are never overwritten.
//   - raw is the raw input string
//
// It returns:
//   - result with Success set and the zero based position the key was placed at
//   - err is either a validation error from the key codec or of type crt.TableFull
func (S *SearchTable) Insert(raw string) (result model.Result, err error) {
	result = model.Result{Position: -1}

	key, err := S.normalizeKey(raw, true)
	if err != nil {
		return
	}

	if S.count == S.capacity {
		err = crt.TableFull{}
		return
	}

	// With array-only usage the first free slot is count itself, hash operations
	// may have occupied slots anywhere
	pos := S.count
	for i := range S.slots {
		if S.slots[i] == "" {
			pos = i
			break
		}
	}
	S.slots[pos] = key
	S.count++

	result = model.Result{
		Success:  true,
		Position: pos,
		Steps: []model.Step{{
			Position: pos,
			Key:      key,
			Action:   model.ActionPlaced,
			Formula:  fmt.Sprintf("placed at slot %d", pos+1),
		}},
	}

	return
}

// SortedInsert - Normalizes the raw key and inserts it keeping the prefix ascending, which is the
// invariant the binary search relies on. No separate sort call is needed as long as every insert
// goes through this operation.
//   - raw is the raw input string
//
// It returns:
//   - result with Success set and the zero based position the key was placed at
//   - err is either a validation error from the key codec or of type crt.TableFull
func (S *SearchTable) SortedInsert(raw string) (result model.Result, err error) {
	result = model.Result{Position: -1}

	key, err := S.normalizeKey(raw, true)
	if err != nil {
		return
	}

	result, err = search.SortedInsert(S.slots, S.count, key)
	if err != nil {
		return
	}

	S.count++

	return
}

// Delete - Locates the key by sequential search and removes it, left shifting the suffix by one so
// the dense packing invariant keeps holding. A miss is reported through Result, not as an error.
//   - raw is the raw input string
func (S *SearchTable) Delete(raw string) (result model.Result, err error) {
	result = model.Result{Position: -1}

	key, err := S.normalizeKey(raw, false)
	if err != nil {
		return
	}

	result = search.Sequential(S.slots, key)
	if !result.Found {
		return
	}

	pos := result.Position
	copy(S.slots[pos:S.count-1], S.slots[pos+1:S.count])
	S.slots[S.count-1] = ""
	S.count--

	result.Success = true
	result.Steps = append(result.Steps, model.Step{
		Position: pos,
		Key:      key,
		Action:   model.ActionRemoved,
		Formula:  fmt.Sprintf("slot %d cleared, suffix shifted left", pos+1),
	})

	return
}

// SequentialSearch - Scans the slots from position 0 upwards, stopping at the first empty slot or
// on a match. Every visited slot becomes a trace step.
//   - raw is the raw input string
func (S *SearchTable) SequentialSearch(raw string) (result model.Result, err error) {
	result = model.Result{Position: -1}

	key, err := S.normalizeKey(raw, false)
	if err != nil {
		return
	}

	result = search.Sequential(S.slots, key)

	return
}

// BinarySearch - Searches the ascending prefix of the slots. The prefix order is maintained by
// SortedInsert, or by an explicit Sort after loading an unsorted snapshot.
//   - raw is the raw input string
func (S *SearchTable) BinarySearch(raw string) (result model.Result, err error) {
	result = model.Result{Position: -1}

	key, err := S.normalizeKey(raw, false)
	if err != nil {
		return
	}

	result = search.Binary(S.slots, S.count, key)

	return
}

// Sort - Sorts the occupied prefix ascending by the key comparison rule. It is a one time
// operation needed before binary searching a table that was loaded from an unsorted snapshot.
func (S *SearchTable) Sort() {
	search.Sort(S.slots, S.count)
}

// Compare - Exposes the key comparison rule of the table's data type, mainly for consumers that
// want to render orderings the same way the engine computes them.
func (S *SearchTable) Compare(a, b string) int {
	return keycodec.Compare(a, b)
}
