package searchtable

import (
	"fmt"

	"github.com/gostonefire/searchtable/crt"
	hashfunc "github.com/gostonefire/searchtable/interfaces"
	"github.com/gostonefire/searchtable/internal/hash"
	"github.com/gostonefire/searchtable/internal/keycodec"
	"github.com/gostonefire/searchtable/internal/probe"
)

// Config - Configuration for a new search table
//   - Capacity is the fixed number of slots, it never changes after creation
//   - KeyLength is the exact canonical key width
//   - DataType is one of crt.NumericKeys, crt.TextKeys or crt.AlphanumericKeys
//   - AllowDuplicates permits storing the same canonical key more than once
//   - HashMethod is an optional crt hash method constant, zero value selects crt.ModuloHashing
//   - CollisionStrategy is an optional crt collision resolution technique constant, zero value selects crt.LinearProbing
//   - HashAlgorithm is an optional custom slot selection algorithm following the hashfunc.HashAlgorithm interface
type Config struct {
	Capacity          int
	KeyLength         int
	DataType          int
	AllowDuplicates   bool
	HashMethod        int
	CollisionStrategy int
	HashAlgorithm     hashfunc.HashAlgorithm
}

// TableInfo - Information structure describing a search table
type TableInfo struct {
	Capacity          int    `json:"capacity"`
	KeyLength         int    `json:"keyLength"`
	DataType          string `json:"dataType"`
	AllowDuplicates   bool   `json:"allowDuplicates"`
	Count             int    `json:"count"`
	HashMethod        string `json:"hashMethod"`
	CollisionStrategy string `json:"collisionStrategy"`
}

// SearchTable - The main implementation struct. It owns the fixed size slot array and dispatches
// every operation to the key codec, the hash algorithm and the collision resolvers. All operations
// execute to completion synchronously, there is exactly one owner of the slots at a time.
type SearchTable struct {
	slots             []string
	capacity          int
	keyLength         int
	dataType          int
	allowDuplicates   bool
	count             int
	hashMethod        int
	collisionStrategy int
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	resolvers         map[int]probe.Resolver
}

// New - Returns a new search table with all slots free.
//   - conf is the Config struct with capacity, key length, data type and optional hash settings
//
// It returns:
//   - table is a pointer to a SearchTable struct
//   - err is a normal Go error which should be nil if everything went ok, a non nil error
//     indicates a configuration mistake by the caller and no table is created
func New(conf Config) (table *SearchTable, err error) {
	// Check if capacity is valid
	if conf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the key length is valid
	if conf.KeyLength <= 0 {
		err = fmt.Errorf("key length must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the data type is known
	if crt.DataTypeName(conf.DataType) == "" {
		err = fmt.Errorf("unknown key data type: %d", conf.DataType)
		return
	}

	hashMethod := conf.HashMethod
	if hashMethod == 0 {
		hashMethod = crt.ModuloHashing
	}

	strategy := conf.CollisionStrategy
	if strategy == crt.DefaultStrategy {
		strategy = crt.LinearProbing
	}
	if crt.StrategyName(strategy) == "" {
		err = fmt.Errorf("unknown collision resolution technique: %d", strategy)
		return
	}

	// If no HashAlgorithm was given then use the configured internal one
	var internalAlg bool
	hashAlgorithm := conf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm, err = hash.NewHashAlgorithm(hashMethod, conf.Capacity)
		if err != nil {
			return
		}
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(conf.Capacity)
	}

	table = &SearchTable{
		slots:             make([]string, conf.Capacity),
		capacity:          conf.Capacity,
		keyLength:         conf.KeyLength,
		dataType:          conf.DataType,
		allowDuplicates:   conf.AllowDuplicates,
		hashMethod:        hashMethod,
		collisionStrategy: strategy,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	err = table.buildResolvers()
	if err != nil {
		table = nil
		return
	}

	return
}

// Info - Returns a TableInfo struct describing the table and its current occupancy
func (S *SearchTable) Info() TableInfo {
	return TableInfo{
		Capacity:          S.capacity,
		KeyLength:         S.keyLength,
		DataType:          crt.DataTypeName(S.dataType),
		AllowDuplicates:   S.allowDuplicates,
		Count:             S.count,
		HashMethod:        crt.HashMethodName(S.hashMethod),
		CollisionStrategy: crt.StrategyName(S.collisionStrategy),
	}
}

// Keys - Returns a copy of the slot array, free slots are empty strings. The returned slice is
// detached from the table, mutating it has no effect on the table.
func (S *SearchTable) Keys() []string {
	keys := make([]string, len(S.slots))
	copy(keys, S.slots)
	return keys
}

// Count - Returns the number of occupied slots
func (S *SearchTable) Count() int {
	return S.count
}

// buildResolvers - Instantiates one resolver per collision resolution technique so operations can
// select a technique per call
func (S *SearchTable) buildResolvers() (err error) {
	S.resolvers = make(map[int]probe.Resolver)

	var resolver probe.Resolver
	for _, strategy := range []int{crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing} {
		resolver, err = probe.NewResolver(strategy, S.hashAlgorithm)
		if err != nil {
			return
		}
		S.resolvers[strategy] = resolver
	}

	return
}

// resolver - Returns the resolver for the given technique, the zero value falls back to the
// technique the table was created with
func (S *SearchTable) resolver(strategy int) (resolver probe.Resolver, err error) {
	if strategy == crt.DefaultStrategy {
		strategy = S.collisionStrategy
	}

	resolver, ok := S.resolvers[strategy]
	if !ok {
		err = fmt.Errorf("unknown collision resolution technique: %d", strategy)
	}

	return
}

// normalizeKey - Normalizes a raw input string to a canonical key and, when checkDuplicate is set
// and duplicates are not allowed, fails with crt.DuplicateKey if the key is already stored
func (S *SearchTable) normalizeKey(raw string, checkDuplicate bool) (key string, err error) {
	key, err = keycodec.Normalize(raw, S.dataType, S.keyLength)
	if err != nil {
		return
	}

	if checkDuplicate && !S.allowDuplicates {
		for _, k := range S.slots {
			if k == key {
				err = crt.DuplicateKey{}
				return
			}
		}
	}

	return
}
