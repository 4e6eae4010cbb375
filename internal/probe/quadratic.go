package probe

import (
	"fmt"
	"math/big"

	"github.com/gostonefire/searchtable/crt"
	hashfunc "github.com/gostonefire/searchtable/interfaces"
	"github.com/gostonefire/searchtable/model"
)

// QuadraticProbingResolver - Implements Quadratic Probing, the probe sequence is
// pos(i) = (h - 1 + i²) mod N for i = 0 .. N-1, exhaustive with no cycle skip optimization.
type QuadraticProbingResolver struct {
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewQuadraticProbingResolver - Returns a pointer to a new QuadraticProbingResolver instance
func NewQuadraticProbingResolver(hashAlgorithm hashfunc.HashAlgorithm) *QuadraticProbingResolver {
	return &QuadraticProbingResolver{hashAlgorithm: hashAlgorithm}
}

// Insert - Places key at the first free probed slot, recording a collision step for every occupied
// slot visited. After N failed probes it returns an error of type crt.TableFull and leaves the
// slots unchanged.
func (Q *QuadraticProbingResolver) Insert(slots []string, key string, k *big.Int) (result model.Result, err error) {
	result = model.Result{Position: -1}

	n := len(slots)
	h, meta := Q.hashAlgorithm.Slot(k)
	if err = slotCheck(h, n); err != nil {
		return
	}
	steps := []model.Step{hashStep(meta)}

	for i := 0; i < n; i++ {
		pos := (h - 1 + i*i) % n
		formula := fmt.Sprintf("(%d - 1 + %d²) mod %d = %d", h, i, n, pos)

		if slots[pos] == "" {
			slots[pos] = key
			steps = append(steps, model.Step{Position: pos, Key: key, Action: model.ActionPlaced, Formula: formula})
			result = model.Result{Success: true, Position: pos, Steps: steps}
			return
		}

		steps = append(steps, model.Step{Position: pos, Key: slots[pos], Action: model.ActionCollision, Formula: formula})
	}

	result = model.Result{Position: -1, Steps: steps}
	err = crt.TableFull{}

	return
}

// Search - Walks the same probe sequence as Insert, terminating as not found after encountering
// two empty slots, the same early exit rule as Linear Probing.
func (Q *QuadraticProbingResolver) Search(slots []string, key string, k *big.Int) (result model.Result, err error) {
	result = model.Result{Position: -1}

	n := len(slots)
	h, meta := Q.hashAlgorithm.Slot(k)
	if err = slotCheck(h, n); err != nil {
		return
	}
	steps := []model.Step{hashStep(meta)}

	var empties int
	for i := 0; i < n; i++ {
		pos := (h - 1 + i*i) % n
		formula := fmt.Sprintf("(%d - 1 + %d²) mod %d = %d", h, i, n, pos)

		if slots[pos] == "" {
			empties++
			steps = append(steps, model.Step{Position: pos, Action: model.ActionProbe, Formula: formula})
			if empties == 2 {
				break
			}
			continue
		}

		if slots[pos] == key {
			steps = append(steps, model.Step{Position: pos, Key: key, Action: model.ActionFound, Formula: formula})
			result = model.Result{Found: true, Position: pos, Steps: steps}
			return
		}

		steps = append(steps, model.Step{Position: pos, Key: slots[pos], Action: model.ActionCollision, Formula: formula})
	}

	result = model.Result{Position: -1, Steps: steps}

	return
}

// Delete - Locates key via Search and clears the slot, no tombstone is left behind
func (Q *QuadraticProbingResolver) Delete(slots []string, key string, k *big.Int) (result model.Result, err error) {
	result, err = Q.Search(slots, key, k)
	if err != nil || !result.Found {
		return
	}

	result = removeAt(slots, key, result.Position, result.Steps)

	return
}
