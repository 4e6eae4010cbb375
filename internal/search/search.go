package search

import (
	"fmt"
	"sort"

	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/internal/keycodec"
	"github.com/gostonefire/searchtable/model"
)

// Sequential - Scans the slots from position 0 upwards looking for key. Every visited slot is a
// trace step with a match flag. The scan stops at the first empty slot, relying on the dense
// packing invariant that occupied slots form a contiguous prefix of the array.
func Sequential(slots []string, key string) (result model.Result) {
	var steps []model.Step

	for i := 0; i < len(slots); i++ {
		if slots[i] == "" {
			steps = append(steps, model.Step{
				Position: i,
				Action:   model.ActionNotFound,
				Formula:  fmt.Sprintf("slot %d empty, scan stops", i+1),
			})
			break
		}

		if slots[i] == key {
			steps = append(steps, model.Step{
				Position: i,
				Key:      key,
				Action:   model.ActionFound,
				Formula:  fmt.Sprintf("slots[%d] = %s, match", i, slots[i]),
			})
			result = model.Result{Found: true, Position: i, Steps: steps}
			return
		}

		steps = append(steps, model.Step{
			Position: i,
			Key:      slots[i],
			Action:   model.ActionCompare,
			Formula:  fmt.Sprintf("slots[%d] = %s, no match", i, slots[i]),
		})
	}

	result = model.Result{Position: -1, Steps: steps}

	return
}

// Binary - Searches for key over the ascending prefix slots[0, count). Equality is checked once per
// iteration to minimize comparisons, halving the range on the outcome. The loop ends with
// low > high, recording a final not found step that reuses the last examined range.
func Binary(slots []string, count int, key string) (result model.Result) {
	var steps []model.Step

	low, high := 0, count-1
	lastMid := -1

	for low <= high {
		mid := (low + high) / 2
		lastMid = mid
		c := keycodec.Compare(key, slots[mid])

		if c == 0 {
			steps = append(steps, model.Step{
				Position: mid,
				Key:      slots[mid],
				Action:   model.ActionFound,
				Formula:  fmt.Sprintf("mid = (%d + %d) / 2 = %d, slots[%d] = %s, match", low, high, mid, mid, slots[mid]),
			})
			result = model.Result{Found: true, Position: mid, Steps: steps}
			return
		}

		steps = append(steps, model.Step{
			Position: mid,
			Key:      slots[mid],
			Action:   model.ActionCompare,
			Formula:  fmt.Sprintf("mid = (%d + %d) / 2 = %d, slots[%d] = %s, no match", low, high, mid, mid, slots[mid]),
		})

		if c < 0 {
			high = mid - 1
		} else {
			low = mid + 1
		}
	}

	steps = append(steps, model.Step{
		Position: lastMid,
		Action:   model.ActionNotFound,
		Formula:  fmt.Sprintf("low %d > high %d, search stops", low, high),
	})

	result = model.Result{Position: -1, Steps: steps}

	return
}

// SortedInsert - Inserts key into the ascending prefix slots[0, count) by linear placement, no
// binary scan. It finds the first existing key strictly greater than the new key, right shifts the
// suffix by one and writes the key. The dense packing and ascending order invariants are preserved.
// A full array returns an error of type crt.TableFull and leaves the slots unchanged.
func SortedInsert(slots []string, count int, key string) (result model.Result, err error) {
	if count == len(slots) {
		result = model.Result{Position: -1}
		err = crt.TableFull{}
		return
	}

	var steps []model.Step

	pos := count
	for i := 0; i < count; i++ {
		if keycodec.Compare(slots[i], key) > 0 {
			pos = i
			break
		}
		steps = append(steps, model.Step{
			Position: i,
			Key:      slots[i],
			Action:   model.ActionCompare,
			Formula:  fmt.Sprintf("slots[%d] = %s <= %s", i, slots[i], key),
		})
	}

	copy(slots[pos+1:count+1], slots[pos:count])
	slots[pos] = key

	steps = append(steps, model.Step{
		Position: pos,
		Key:      key,
		Action:   model.ActionPlaced,
		Formula:  fmt.Sprintf("placed at slot %d, suffix shifted right", pos+1),
	})

	result = model.Result{Success: true, Position: pos, Steps: steps}

	return
}

// Sort - Sorts the prefix slots[0, count) ascending by the key comparison rule. It is only needed
// once after loading a snapshot that was not produced by SortedInsert, the insert path maintains
// the order by itself.
func Sort(slots []string, count int) {
	sort.SliceStable(slots[:count], func(i, j int) bool {
		return keycodec.Compare(slots[i], slots[j]) < 0
	})
}
