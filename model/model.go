package model

// ActionHash - Step computing the home slot of a key through the active hash method
const ActionHash string = "hash"

// ActionProbe - Step examining a slot during a probe sequence
const ActionProbe string = "probe"

// ActionCollision - Step where a probed slot was occupied by another key
const ActionCollision string = "collision"

// ActionCompare - Step comparing the target key against the key in a slot
const ActionCompare string = "compare"

// ActionFound - Step where the target key was located
const ActionFound string = "found"

// ActionPlaced - Step where a key was written to a free slot
const ActionPlaced string = "placed"

// ActionRemoved - Step where a key was cleared from its slot
const ActionRemoved string = "removed"

// ActionNotFound - Step concluding that the target key is not present
const ActionNotFound string = "not-found"

// Step - Represents one probe or comparison made by an operation. The ordered sequence of steps is
// immutable once produced and is the sole channel through which an operation communicates how its
// result was reached.
//   - Position is the zero based slot position examined, or -1 when no slot was involved
//   - Key is the key found at the position, empty if the slot was free
//   - Action is one of the Action* constants
//   - Formula is a human-readable rendition of the exact arithmetic performed in the step
type Step struct {
	Position int    `json:"position"`
	Key      string `json:"key,omitempty"`
	Action   string `json:"action"`
	Formula  string `json:"formula,omitempty"`
}

// Result - The outcome of one search table operation
//   - Found reports whether a search operation located the key
//   - Success reports whether a mutating operation took effect
//   - Position is the zero based slot position involved, -1 if none
//   - Steps is the ordered trace of probes and comparisons that led to the outcome
type Result struct {
	Found    bool   `json:"found"`
	Success  bool   `json:"success"`
	Position int    `json:"position"`
	Steps    []Step `json:"steps,omitempty"`
}

// HashMeta - Intermediate values produced while hashing one projected key, kept for trace and
// formula rendering. Only the fields relevant for the active hash method are filled in.
//   - Key is the decimal string of the projected key
//   - Squared is the decimal string of the key squared (mid-square)
//   - Central is the central digits taken from the square (mid-square)
//   - Blocks is the digit blocks the key was split into (folding)
//   - BlockSum is the decimal sum of the blocks (folding)
//   - Picked is the digits picked at every other position (truncation)
//   - Value is the decimal value fed into the final modulo
//   - Slot is the resulting one based slot number
type HashMeta struct {
	Method   string   `json:"method"`
	Key      string   `json:"key"`
	Squared  string   `json:"squared,omitempty"`
	Central  string   `json:"central,omitempty"`
	Blocks   []string `json:"blocks,omitempty"`
	BlockSum string   `json:"blockSum,omitempty"`
	Picked   string   `json:"picked,omitempty"`
	Value    string   `json:"value"`
	Slot     int      `json:"slot"`
	Formula  string   `json:"formula"`
}
