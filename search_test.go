package algokit

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCatalog(n int) []Record[int] {
	out := make([]Record[int], n)
	for i := range out {
		out[i] = Record[int]{ID: fmt.Sprintf("ID_%07d", i), Payload: i}
	}
	return out
}

func TestSequentialSearch(t *testing.T) {
	records := []Record[string]{
		{ID: "ID_000003", Payload: "c"},
		{ID: "ID_000001", Payload: "a"},
		{ID: "ID_000002", Payload: "b"},
		{ID: "ID_000001", Payload: "dup"},
	}

	res := SequentialSearch(records, "ID_000002")
	require.True(t, res.Found())
	assert.Equal(t, 2, res.Index)
	assert.Equal(t, 3, res.Comparisons)

	// first match wins
	res = SequentialSearch(records, "ID_000001")
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, 2, res.Comparisons)

	res = SequentialSearch(records, "ID_999999")
	assert.False(t, res.Found())
	assert.Equal(t, NotFound, res.Index)
	assert.Equal(t, len(records), res.Comparisons)
}

func TestSequentialSearchEmpty(t *testing.T) {
	res := SequentialSearch([]Record[int](nil), "x")
	assert.False(t, res.Found())
	assert.Equal(t, 0, res.Comparisons)
}

func TestBinarySearch(t *testing.T) {
	catalog := makeCatalog(1000)
	require.True(t, IsSortedByKey(catalog))

	maxProbes := bits.Len(uint(len(catalog)))
	for _, i := range []int{0, 1, 499, 500, 998, 999} {
		res := BinarySearch(catalog, catalog[i].ID)
		require.True(t, res.Found(), "index %d", i)
		assert.Equal(t, i, res.Index)
		assert.LessOrEqual(t, res.Comparisons, maxProbes)
	}

	res := BinarySearch(catalog, "ID_9999999")
	assert.False(t, res.Found())
	assert.LessOrEqual(t, res.Comparisons, maxProbes)

	res = BinarySearch(catalog, "A")
	assert.False(t, res.Found())
}

func TestBinarySearchMidpointSequence(t *testing.T) {
	catalog := makeCatalog(7)
	// mid=3 first, then 5, then 6
	res := BinarySearch(catalog, catalog[6].ID)
	assert.Equal(t, 6, res.Index)
	assert.Equal(t, 3, res.Comparisons)

	res = BinarySearch(catalog, catalog[3].ID)
	assert.Equal(t, 1, res.Comparisons)
}

func TestBinarySearchEmptyAndSingle(t *testing.T) {
	res := BinarySearch([]Record[int]{}, "x")
	assert.False(t, res.Found())
	assert.Equal(t, 0, res.Comparisons)

	one := []Record[int]{{ID: "x"}}
	res = BinarySearch(one, "x")
	assert.Equal(t, SearchResult{Index: 0, Comparisons: 1}, res)
}

func TestBinarySearchUnsortedTerminates(t *testing.T) {
	records := makeCatalog(64)
	rng := rand.New(rand.NewPCG(1, 2))
	rng.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
	require.False(t, IsSortedByKey(records))

	for _, r := range records {
		res := BinarySearch(records, r.ID)
		if res.Found() {
			assert.Equal(t, r.ID, records[res.Index].ID)
		}
		assert.LessOrEqual(t, res.Comparisons, bits.Len(uint(len(records))))
	}
}

func TestSearchesAgreeOnSortedInput(t *testing.T) {
	catalog := makeCatalog(513)
	for i := range catalog {
		seq := SequentialSearch(catalog, catalog[i].ID)
		bin := BinarySearch(catalog, catalog[i].ID)
		require.Equal(t, seq.Index, bin.Index)
	}
	for _, missing := range []string{"", "ID_", "ID_0000005x", "ZZZ"} {
		seq := SequentialSearch(catalog, missing)
		bin := BinarySearch(catalog, missing)
		assert.False(t, seq.Found())
		assert.False(t, bin.Found())
		assert.Equal(t, len(catalog), seq.Comparisons)
	}
}

func TestSearchDoesNotMutate(t *testing.T) {
	catalog := makeCatalog(32)
	before := append([]Record[int](nil), catalog...)
	SequentialSearch(catalog, "ID_0000010")
	BinarySearch(catalog, "ID_0000010")
	assert.Equal(t, before, catalog)
}

func BenchmarkSearch(b *testing.B) {
	catalog := makeCatalog(100_000)
	target := catalog[77_777].ID
	b.Run("sequential", func(b *testing.B) {
		for range b.N {
			SequentialSearch(catalog, target)
		}
	})
	b.Run("binary", func(b *testing.B) {
		for range b.N {
			BinarySearch(catalog, target)
		}
	})
}
