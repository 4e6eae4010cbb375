//go:build integration

package searchtable

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/model"
)

func TestNew(t *testing.T) {
	t.Run("creates a table with all slots free", func(t *testing.T) {
		// Prepare
		conf := Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys}

		// Execute
		table, err := New(conf)

		// Check
		assert.NoError(t, err, "creates table")
		assert.Equal(t, 0, table.Count(), "no slots occupied")
		assert.Equal(t, []string{"", "", "", "", ""}, table.Keys(), "all slots free")
	})

	t.Run("defaults to modulo hashing and linear probing", func(t *testing.T) {
		// Prepare
		conf := Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys}

		// Execute
		table, err := New(conf)

		// Check
		assert.NoError(t, err, "creates table")
		info := table.Info()
		assert.Equal(t, "modulo", info.HashMethod, "modulo is the default hash method")
		assert.Equal(t, "linear", info.CollisionStrategy, "linear probing is the default technique")
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		// Prepare
		bad := []Config{
			{Capacity: 0, KeyLength: 2, DataType: crt.NumericKeys},
			{Capacity: 5, KeyLength: 0, DataType: crt.NumericKeys},
			{Capacity: 5, KeyLength: 2, DataType: 99},
			{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys, CollisionStrategy: 99},
			{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys, HashMethod: 99},
		}

		// Execute & Check
		for _, conf := range bad {
			table, err := New(conf)
			assert.Error(t, err, "configuration mistake rejected")
			assert.Nil(t, table, "no table created")
		}
	})
}

func TestSearchTable_Insert(t *testing.T) {
	t.Run("pads and appends keys in arrival order", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})

		// Execute
		first, err1 := table.Insert("3")
		second, err2 := table.Insert("44")

		// Check
		assert.NoError(t, err1, "first insert ok")
		assert.Equal(t, 0, first.Position, "first key at position 0")
		assert.NoError(t, err2, "second insert ok")
		assert.Equal(t, 1, second.Position, "second key at position 1")
		assert.Equal(t, "03", table.Keys()[0], "short key left padded")
		assert.Equal(t, 2, table.Count(), "two slots occupied")
	})

	t.Run("rejects duplicates unless allowed", func(t *testing.T) {
		// Prepare
		strict, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		relaxed, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys, AllowDuplicates: true})
		_, _ = strict.Insert("3")
		_, _ = relaxed.Insert("3")

		// Execute
		_, errStrict := strict.Insert("03")
		_, errRelaxed := relaxed.Insert("03")

		// Check
		assert.True(t, errors.Is(errStrict, crt.DuplicateKey{}), "duplicate canonical key rejected")
		assert.NoError(t, errRelaxed, "duplicates stored when allowed")
		assert.Equal(t, 2, relaxed.Count(), "both copies stored")
	})

	t.Run("never overwrites a slot occupied by a hash operation", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		// Occupies position 2, leaving a hole in the array prefix
		_, _ = table.HashInsert("2", crt.DefaultStrategy)

		// Execute
		first, err1 := table.Insert("9")
		second, err2 := table.Insert("8")
		third, err3 := table.Insert("7")

		// Check
		assert.NoError(t, err1, "first insert ok")
		assert.Equal(t, 0, first.Position, "first free slot is position 0")
		assert.NoError(t, err2, "second insert ok")
		assert.Equal(t, 1, second.Position, "next free slot is position 1")
		assert.NoError(t, err3, "third insert ok")
		assert.Equal(t, 3, third.Position, "occupied slot skipped")
		assert.Equal(t, []string{"09", "08", "02", "07", ""}, table.Keys(), "hash-placed key untouched")
		assert.Equal(t, 4, table.Count(), "count matches the non-empty slots")
	})

	t.Run("fails when the table is full", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 2, KeyLength: 2, DataType: crt.NumericKeys})
		_, _ = table.Insert("1")
		_, _ = table.Insert("2")

		// Execute
		_, err := table.Insert("3")

		// Check
		assert.True(t, errors.Is(err, crt.TableFull{}), "full table reported")
		assert.Equal(t, 2, table.Count(), "count unchanged")
	})
}

func TestSearchTable_Delete(t *testing.T) {
	t.Run("left shifts the suffix keeping the prefix dense", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		for _, raw := range []string{"1", "2", "3"} {
			_, _ = table.Insert(raw)
		}

		// Execute
		result, err := table.Delete("2")

		// Check
		assert.NoError(t, err, "delete ok")
		assert.True(t, result.Success, "delete succeeded")
		assert.Equal(t, 1, result.Position, "removed from position 1")
		assert.Equal(t, []string{"01", "03", "", "", ""}, table.Keys(), "suffix shifted left")
		assert.Equal(t, 2, table.Count(), "count decremented")
	})

	t.Run("a miss is reported through the result, not as an error", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		_, _ = table.Insert("1")

		// Execute
		result, err := table.Delete("9")

		// Check
		assert.NoError(t, err, "miss is not an error")
		assert.False(t, result.Success, "nothing removed")
		assert.Equal(t, 1, table.Count(), "count unchanged")
	})
}

func TestSearchTable_SequentialSearch(t *testing.T) {
	t.Run("finds keys in arrival order storage", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		for _, raw := range []string{"7", "1", "5"} {
			_, _ = table.Insert(raw)
		}

		// Execute
		hit, errHit := table.SequentialSearch("5")
		miss, errMiss := table.SequentialSearch("9")

		// Check
		assert.NoError(t, errHit, "search ok")
		assert.True(t, hit.Found, "key found")
		assert.Equal(t, 2, hit.Position, "found at position 2")
		assert.NoError(t, errMiss, "miss is not an error")
		assert.False(t, miss.Found, "key not found")
	})

	t.Run("propagates key validation errors", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})

		// Execute
		_, err := table.SequentialSearch("abc")

		// Check
		assert.True(t, errors.Is(err, crt.InvalidKey{}), "grammar violation rejected")
	})
}

func TestSearchTable_SortedInsertAndBinarySearch(t *testing.T) {
	t.Run("sorted inserts keep the prefix binary searchable", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		for _, raw := range []string{"7", "1", "5", "3"} {
			_, err := table.SortedInsert(raw)
			assert.NoError(t, err, "sorted insert ok")
		}

		// Execute
		hit, errHit := table.BinarySearch("5")
		miss, errMiss := table.BinarySearch("6")

		// Check
		assert.Equal(t, []string{"01", "03", "05", "07", ""}, table.Keys(), "prefix ascending")
		assert.NoError(t, errHit, "search ok")
		assert.True(t, hit.Found, "key found")
		assert.Equal(t, 2, hit.Position, "found at position 2")
		assert.NoError(t, errMiss, "miss is not an error")
		assert.False(t, miss.Found, "key not found")
		assert.Equal(t, model.ActionNotFound, miss.Steps[len(miss.Steps)-1].Action, "closing step marks not found")
	})

	t.Run("sort makes an arrival order table binary searchable", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		for _, raw := range []string{"7", "1", "5"} {
			_, _ = table.Insert(raw)
		}

		// Execute
		table.Sort()
		result, err := table.BinarySearch("7")

		// Check
		assert.NoError(t, err, "search ok")
		assert.True(t, result.Found, "key found after sorting")
		assert.Equal(t, 2, result.Position, "largest key last")
	})
}

func TestSearchTable_HashOperations(t *testing.T) {
	t.Run("insert, search and delete through the configured technique", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})

		// Execute
		first, err1 := table.HashInsert("2", crt.DefaultStrategy)
		second, err2 := table.HashInsert("7", crt.DefaultStrategy)
		found, errSearch := table.HashSearch("7", crt.DefaultStrategy)
		removed, errDelete := table.HashDelete("7", crt.DefaultStrategy)

		// Check
		assert.NoError(t, err1, "first insert ok")
		assert.Equal(t, 2, first.Position, "home slot of hash 3 is position 2")
		assert.NoError(t, err2, "second insert ok")
		assert.Equal(t, 3, second.Position, "linear probing placed one position further")
		assert.NoError(t, errSearch, "search ok")
		assert.True(t, found.Found, "key found along its probe chain")
		assert.NoError(t, errDelete, "delete ok")
		assert.True(t, removed.Success, "key removed")
		assert.Equal(t, "", table.Keys()[3], "slot cleared outright")
		assert.Equal(t, 1, table.Count(), "count decremented")
	})

	t.Run("technique can be chosen per call", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		_, _ = table.HashInsert("2", crt.DefaultStrategy)

		// Execute
		result, err := table.HashInsert("7", crt.DoubleHashing)

		// Check
		assert.NoError(t, err, "insert ok")
		assert.Equal(t, 4, result.Position, "double hashing re-applies the hash to the next slot number")
	})

	t.Run("fails on unknown technique", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})

		// Execute
		_, err := table.HashInsert("2", 99)

		// Check
		assert.Error(t, err, "unknown technique rejected")
	})

	t.Run("duplicate check applies before probing", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		_, _ = table.HashInsert("7", crt.DefaultStrategy)

		// Execute
		_, err := table.HashInsert("07", crt.DefaultStrategy)

		// Check
		assert.True(t, errors.Is(err, crt.DuplicateKey{}), "duplicate canonical key rejected")
		assert.Equal(t, 1, table.Count(), "count unchanged")
	})
}

// sumHashAlgorithm is a minimal custom slot selection algorithm used to verify the
// plug-in hook, it maps every key to (k mod N) + 1 just like the built-in modulo.
type sumHashAlgorithm struct {
	tableSize int
}

func (C *sumHashAlgorithm) SetTableSize(tableSize int) {
	C.tableSize = tableSize
}

func (C *sumHashAlgorithm) GetTableSize() int {
	return C.tableSize
}

func (C *sumHashAlgorithm) Slot(k *big.Int) (int, model.HashMeta) {
	slot := int(new(big.Int).Mod(k, big.NewInt(int64(C.tableSize))).Int64()) + 1
	return slot, model.HashMeta{Method: "custom", Key: k.String(), Slot: slot}
}

func TestSearchTable_CustomHashAlgorithm(t *testing.T) {
	t.Run("a supplied algorithm replaces the built-in one", func(t *testing.T) {
		// Prepare
		alg := &sumHashAlgorithm{}
		table, err := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys, HashAlgorithm: alg})

		// Execute
		result, errInsert := table.HashInsert("2", crt.DefaultStrategy)

		// Check
		assert.NoError(t, err, "creates table")
		assert.Equal(t, 5, alg.GetTableSize(), "table size pushed into the algorithm")
		assert.NoError(t, errInsert, "insert ok")
		assert.Equal(t, 2, result.Position, "custom algorithm selected the slot")
	})

	t.Run("an algorithm breaking the slot range contract surfaces as an error", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys, HashAlgorithm: &outOfRangeHashAlgorithm{}})

		// Execute
		_, errInsert := table.HashInsert("2", crt.DefaultStrategy)
		_, errSearch := table.HashSearch("2", crt.DefaultStrategy)
		_, errDelete := table.HashDelete("2", crt.DefaultStrategy)

		// Check
		assert.Error(t, errInsert, "insert rejects the out-of-range slot")
		assert.Error(t, errSearch, "search rejects the out-of-range slot")
		assert.Error(t, errDelete, "delete rejects the out-of-range slot")
		assert.Equal(t, 0, table.Count(), "nothing stored")
	})
}

// outOfRangeHashAlgorithm always reports slot 0, outside the promised [1, N] range
type outOfRangeHashAlgorithm struct {
	tableSize int
}

func (O *outOfRangeHashAlgorithm) SetTableSize(tableSize int) {
	O.tableSize = tableSize
}

func (O *outOfRangeHashAlgorithm) GetTableSize() int {
	return O.tableSize
}

func (O *outOfRangeHashAlgorithm) Slot(k *big.Int) (int, model.HashMeta) {
	return 0, model.HashMeta{Method: "custom", Key: k.String(), Slot: 0}
}

func TestSession(t *testing.T) {
	t.Run("create, operate and reset", func(t *testing.T) {
		// Prepare
		session := NewSession()

		// Execute
		table, errCreate := session.Create(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		_, errInsert := table.Insert("3")
		session.Reset()
		_, errTable := session.Table()

		// Check
		assert.NoError(t, errCreate, "create ok")
		assert.NoError(t, errInsert, "insert ok")
		assert.True(t, errors.Is(errTable, crt.NotCreated{}), "reset returns the session to uncreated")
	})

	t.Run("creating over an existing table fails", func(t *testing.T) {
		// Prepare
		session := NewSession()
		_, _ = session.Create(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})

		// Execute
		_, err := session.Create(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})

		// Check
		assert.True(t, errors.Is(err, crt.AlreadyCreated{}), "second create rejected")
	})

	t.Run("reset allows creating anew", func(t *testing.T) {
		// Prepare
		session := NewSession()
		_, _ = session.Create(Config{Capacity: 5, KeyLength: 2, DataType: crt.NumericKeys})
		session.Reset()

		// Execute
		table, err := session.Create(Config{Capacity: 3, KeyLength: 1, DataType: crt.TextKeys})

		// Check
		assert.NoError(t, err, "create after reset ok")
		assert.Equal(t, 3, table.Info().Capacity, "new configuration in effect")
	})
}

func TestSearchTable_Info(t *testing.T) {
	t.Run("describes configuration and occupancy", func(t *testing.T) {
		// Prepare
		table, _ := New(Config{
			Capacity:          7,
			KeyLength:         3,
			DataType:          crt.AlphanumericKeys,
			AllowDuplicates:   true,
			HashMethod:        crt.FoldingHashing,
			CollisionStrategy: crt.QuadraticProbing,
		})
		_, _ = table.Insert("ab1")

		// Execute
		info := table.Info()

		// Check
		assert.Equal(t, 7, info.Capacity, "capacity")
		assert.Equal(t, 3, info.KeyLength, "key length")
		assert.Equal(t, "alphanumeric", info.DataType, "data type name")
		assert.True(t, info.AllowDuplicates, "duplicates allowed")
		assert.Equal(t, 1, info.Count, "occupancy")
		assert.Equal(t, "folding", info.HashMethod, "hash method name")
		assert.Equal(t, "quadratic", info.CollisionStrategy, "technique name")
	})
}
