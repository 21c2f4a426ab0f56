package typename

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cached struct{ id int }

func TestRegistry_Memoizes(t *testing.T) {
	Reset()
	defer Reset()

	first := Name[cached]()
	assert.Equal(t, 1, Count())

	// The second call must be a pure lookup returning the same value.
	second := Name[cached]()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, Count())

	hits, misses := Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestRegistry_SharedAcrossForms(t *testing.T) {
	Reset()
	defer Reset()

	// Raw, Name and Base all read the same entry, so the type is
	// computed once no matter which form is asked for first.
	_ = Base[cached]()
	_ = Raw[cached]()
	_ = Name[cached]()

	assert.Equal(t, 1, Count())

	hits, misses := Stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestRegistry_EntriesSnapshot(t *testing.T) {
	Reset()
	defer Reset()

	_ = Name[cached]()
	_ = Name[int]()
	_ = Name[string]()

	rows := Entries()
	require.Len(t, rows, 3)

	// Sorted by raw name for stable output.
	assert.True(t, sort.SliceIsSorted(rows, func(i, j int) bool {
		return rows[i].Entry.Raw.String() < rows[j].Entry.Raw.String()
	}))

	for _, row := range rows {
		assert.NotNil(t, row.Type)
		assert.False(t, row.Entry.Raw.IsEmpty())
		assert.False(t, row.Entry.Name.IsEmpty())
		assert.False(t, row.Entry.Base.IsEmpty())
	}

	// The snapshot is detached from the registry.
	rows[0].Entry.Raw = NewFixedString("clobbered")
	assert.Equal(t, "int", Raw[int]().String())
}

func TestRegistry_Reset(t *testing.T) {
	Reset()

	_ = Name[cached]()
	require.Equal(t, 1, Count())

	Reset()
	assert.Equal(t, 0, Count())

	hits, misses := Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)
}

func TestRegistry_ConcurrentLookups(t *testing.T) {
	Reset()
	defer Reset()

	const goroutines = 16
	results := make([]string, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = Name[cached]().String()
		}(i)
	}
	wg.Wait()

	// Every goroutine saw the same memoized value and the type was
	// stored exactly once.
	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
	assert.Equal(t, 1, Count())
}
