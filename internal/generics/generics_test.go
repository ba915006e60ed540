package generics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, int8(3), Abs(int8(-3)))
	assert.Equal(t, 7, Abs(7))
	assert.Equal(t, int64(0), Abs(int64(0)))
}

func TestSortedKeys(t *testing.T) {
	m := map[int]string{1: "1", 5: "5", 3: "3"}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []int{1, 3, 5}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestStableSortByAndTruncate(t *testing.T) {
	words := []string{"ccc", "a", "bb", "d", "ee"}
	StableSortBy(words, func(w string) int { return len(w) })
	assert.Equal(t, []string{"a", "d", "bb", "ee", "ccc"}, words)
	assert.Equal(t, []string{"a", "d"}, Truncate(words, 2))
	assert.Len(t, Truncate(words, 0), 5)
	assert.Len(t, Truncate(words, 10), 5)
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))
}
