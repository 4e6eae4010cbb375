package searchtable

import (
	"encoding/json"
	"fmt"

	"github.com/gostonefire/searchtable/crt"
	hashfunc "github.com/gostonefire/searchtable/interfaces"
	"github.com/gostonefire/searchtable/internal/hash"
)

// snapshot - The serialized form of a search table. Free slots are null entries in the keys array.
type snapshot struct {
	Keys              []*string `json:"keys"`
	Size              int       `json:"size"`
	KeyLength         int       `json:"keyLength"`
	DataType          string    `json:"dataType"`
	AllowDuplicates   bool      `json:"allowDuplicates"`
	Count             int       `json:"count"`
	HashMethod        string    `json:"hashMethod,omitempty"`
	CollisionStrategy string    `json:"collisionStrategy,omitempty"`
}

// ToJSON - Serializes the table to its JSON snapshot form. A snapshot fed back through FromJSON
// reconstructs slots, count and configuration verbatim.
func (S *SearchTable) ToJSON() (data []byte, err error) {
	snap := snapshot{
		Keys:              make([]*string, S.capacity),
		Size:              S.capacity,
		KeyLength:         S.keyLength,
		DataType:          crt.DataTypeName(S.dataType),
		AllowDuplicates:   S.allowDuplicates,
		Count:             S.count,
		HashMethod:        crt.HashMethodName(S.hashMethod),
		CollisionStrategy: crt.StrategyName(S.collisionStrategy),
	}

	for i := range S.slots {
		if S.slots[i] != "" {
			key := S.slots[i]
			snap.Keys[i] = &key
		}
	}

	data, err = json.Marshal(snap)

	return
}

// FromJSON - Restores a search table from its JSON snapshot form. Loaded keys are taken verbatim
// with no re-validation against the current rules, only the configuration fields are parsed.
//   - data is a snapshot produced by ToJSON
//   - hashAlgorithm is an optional custom slot selection algorithm, nil selects the built-in one
//     named by the snapshot
//
// It returns:
//   - table is a pointer to a SearchTable struct
//   - err is a normal Go error which should be nil if everything went ok
func FromJSON(data []byte, hashAlgorithm hashfunc.HashAlgorithm) (table *SearchTable, err error) {
	var snap snapshot
	err = json.Unmarshal(data, &snap)
	if err != nil {
		err = fmt.Errorf("error while parsing snapshot: %s", err)
		return
	}

	if snap.Size <= 0 {
		err = fmt.Errorf("snapshot size must be a positive value higher than 0 (zero)")
		return
	}
	if len(snap.Keys) != snap.Size {
		err = fmt.Errorf("snapshot keys length %d doesn't conform with indicated size %d", len(snap.Keys), snap.Size)
		return
	}
	if snap.KeyLength <= 0 {
		err = fmt.Errorf("snapshot key length must be a positive value higher than 0 (zero)")
		return
	}

	dataType, err := crt.ParseDataType(snap.DataType)
	if err != nil {
		return
	}

	hashMethod := crt.ModuloHashing
	if snap.HashMethod != "" {
		hashMethod, err = crt.ParseHashMethod(snap.HashMethod)
		if err != nil {
			return
		}
	}

	strategy := crt.LinearProbing
	if snap.CollisionStrategy != "" {
		strategy, err = crt.ParseStrategy(snap.CollisionStrategy)
		if err != nil {
			return
		}
	}

	// If no HashAlgorithm was given then use the internal one named by the snapshot
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm, err = hash.NewHashAlgorithm(hashMethod, snap.Size)
		if err != nil {
			return
		}
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(snap.Size)
	}

	table = &SearchTable{
		slots:             make([]string, snap.Size),
		capacity:          snap.Size,
		keyLength:         snap.KeyLength,
		dataType:          dataType,
		allowDuplicates:   snap.AllowDuplicates,
		count:             snap.Count,
		hashMethod:        hashMethod,
		collisionStrategy: strategy,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	for i, key := range snap.Keys {
		if key != nil {
			table.slots[i] = *key
		}
	}

	err = table.buildResolvers()
	if err != nil {
		table = nil
		return
	}

	return
}
