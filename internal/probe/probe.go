package probe

import (
	"fmt"
	"math/big"

	"github.com/gostonefire/searchtable/crt"
	hashfunc "github.com/gostonefire/searchtable/interfaces"
	"github.com/gostonefire/searchtable/model"
)

// Resolver - Interface for a collision resolution technique over the shared slot slice.
// All three operations start from the home slot produced by the active hash algorithm and record
// every slot they visit in the returned step trace. An empty string marks a free slot.
type Resolver interface {
	// Insert - Places key at the first free slot of the probe sequence. Slots are left unchanged
	// and an error of type crt.TableFull or crt.ProbingExhausted is returned if the sequence runs
	// out of attempts.
	Insert(slots []string, key string, k *big.Int) (result model.Result, err error)

	// Search - Walks the probe sequence looking for key, terminating early according to the
	// technique's empty slot rule. A miss is reported through Result.Found, not as an error, the
	// error return is reserved for a hash algorithm producing a slot outside the valid range.
	Search(slots []string, key string, k *big.Int) (result model.Result, err error)

	// Delete - Locates key via Search and clears the slot outright, no tombstone is left behind.
	Delete(slots []string, key string, k *big.Int) (result model.Result, err error)
}

// NewResolver - Returns the resolver implementing the given collision resolution technique.
// An unknown technique is a configuration error, it indicates a programming error in the caller
// and aborts construction.
//   - strategy is one of the crt collision resolution technique constants
//   - hashAlgorithm is the active hash algorithm, also re-applied by the double hashing technique
func NewResolver(strategy int, hashAlgorithm hashfunc.HashAlgorithm) (resolver Resolver, err error) {
	switch strategy {
	case crt.LinearProbing:
		resolver = NewLinearProbingResolver(hashAlgorithm)
	case crt.QuadraticProbing:
		resolver = NewQuadraticProbingResolver(hashAlgorithm)
	case crt.DoubleHashing:
		resolver = NewDoubleHashingResolver(hashAlgorithm)
	default:
		err = fmt.Errorf("unknown collision resolution technique: %d", strategy)
	}

	return
}

// slotCheck - Validates that the hash algorithm produced a slot number within [1, n]. Built-in
// algorithms always do, a custom one breaking the contract is a configuration error rather than a
// panic down stream.
func slotCheck(h int, n int) (err error) {
	if h < 1 || h > n {
		err = fmt.Errorf("hash algorithm returned slot %d outside the valid range [1, %d]", h, n)
	}

	return
}

// hashStep - Returns the step recording the home slot computation of a probe sequence
func hashStep(meta model.HashMeta) model.Step {
	return model.Step{
		Position: meta.Slot - 1,
		Action:   model.ActionHash,
		Formula:  meta.Formula,
	}
}

// removeAt - Clears a located slot and appends the concluding step of a delete operation
func removeAt(slots []string, key string, position int, steps []model.Step) model.Result {
	slots[position] = ""

	steps = append(steps, model.Step{
		Position: position,
		Key:      key,
		Action:   model.ActionRemoved,
		Formula:  fmt.Sprintf("slot %d cleared", position+1),
	})

	return model.Result{Success: true, Found: true, Position: position, Steps: steps}
}
