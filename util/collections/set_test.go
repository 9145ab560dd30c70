package collections

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(4))

	set.Add(4)
	set.Remove(1)
	set.Remove(100)

	values := set.Values()
	sort.Ints(values)
	assert.Equal(t, []int{2, 3, 4}, values)
}

func TestSetDifference(t *testing.T) {
	a := NewSet("a", "b", "c")
	b := NewSet("b", "d")

	assert.True(t, a.Difference(b).Equal(NewSet("a", "c")))
	assert.True(t, b.Difference(a).Equal(NewSet("d")))
	assert.Len(t, a, 3, "difference leaves the receiver alone")
}

func TestSetEqual(t *testing.T) {
	assert.True(t, NewSet[int]().Equal(Set[int]{}))
	assert.False(t, NewSet(1, 2).Equal(NewSet(1, 3)))
	assert.False(t, NewSet(1).Equal(NewSet(1, 2)))
}
