package probe

import (
	"math/big"

	"github.com/gostonefire/searchtable/crt"
	hashfunc "github.com/gostonefire/searchtable/interfaces"
	"github.com/gostonefire/searchtable/model"
)

// DoubleHashingResolver - Implements the self-composed Double Hashing technique. This is not a
// classical second hash function scheme, the next position is obtained by re-applying the active
// hash algorithm to the current slot number plus one as if it were a fresh projected key. The
// sequence may revisit slots, so it iterates at most N times.
type DoubleHashingResolver struct {
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewDoubleHashingResolver - Returns a pointer to a new DoubleHashingResolver instance
func NewDoubleHashingResolver(hashAlgorithm hashfunc.HashAlgorithm) *DoubleHashingResolver {
	return &DoubleHashingResolver{hashAlgorithm: hashAlgorithm}
}

// Insert - Places key at the first free slot of the self-composed sequence, recording a collision
// step for every occupied slot visited. Since the sequence is not guaranteed to cover the whole
// table, running out of iterations returns an error of type crt.ProbingExhausted rather than
// crt.TableFull, and leaves the slots unchanged.
func (D *DoubleHashingResolver) Insert(slots []string, key string, k *big.Int) (result model.Result, err error) {
	result = model.Result{Position: -1}

	n := len(slots)
	h, meta := D.hashAlgorithm.Slot(k)
	if err = slotCheck(h, n); err != nil {
		return
	}
	steps := []model.Step{hashStep(meta)}

	for i := 0; i < n; i++ {
		pos := h - 1

		if slots[pos] == "" {
			slots[pos] = key
			steps = append(steps, model.Step{Position: pos, Key: key, Action: model.ActionPlaced, Formula: meta.Formula})
			result = model.Result{Success: true, Position: pos, Steps: steps}
			return
		}

		steps = append(steps, model.Step{Position: pos, Key: slots[pos], Action: model.ActionCollision, Formula: meta.Formula})

		// Re-apply the hash to the current slot number plus one as a fresh key
		h, meta = D.hashAlgorithm.Slot(big.NewInt(int64(pos + 2)))
		if err = slotCheck(h, n); err != nil {
			return
		}
	}

	result = model.Result{Position: -1, Steps: steps}
	err = crt.ProbingExhausted{}

	return
}

// Search - Walks the same sequence as Insert. It terminates as not found on the first empty slot
// encountered, which is inconsistent with the two empty slot rule used by linear and quadratic
// probing but kept exactly as observed.
func (D *DoubleHashingResolver) Search(slots []string, key string, k *big.Int) (result model.Result, err error) {
	result = model.Result{Position: -1}

	n := len(slots)
	h, meta := D.hashAlgorithm.Slot(k)
	if err = slotCheck(h, n); err != nil {
		return
	}
	steps := []model.Step{hashStep(meta)}

	for i := 0; i < n; i++ {
		pos := h - 1

		if slots[pos] == "" {
			steps = append(steps, model.Step{Position: pos, Action: model.ActionProbe, Formula: meta.Formula})
			break
		}

		if slots[pos] == key {
			steps = append(steps, model.Step{Position: pos, Key: key, Action: model.ActionFound, Formula: meta.Formula})
			result = model.Result{Found: true, Position: pos, Steps: steps}
			return
		}

		steps = append(steps, model.Step{Position: pos, Key: slots[pos], Action: model.ActionCollision, Formula: meta.Formula})

		h, meta = D.hashAlgorithm.Slot(big.NewInt(int64(pos + 2)))
		if err = slotCheck(h, n); err != nil {
			return
		}
	}

	result = model.Result{Position: -1, Steps: steps}

	return
}

// Delete - Locates key via Search and clears the slot, no tombstone is left behind
func (D *DoubleHashingResolver) Delete(slots []string, key string, k *big.Int) (result model.Result, err error) {
	result, err = D.Search(slots, key, k)
	if err != nil || !result.Found {
		return
	}

	result = removeAt(slots, key, result.Position, result.Steps)

	return
}
