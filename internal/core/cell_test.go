package core

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCompareOrdersFloorFirst(t *testing.T) {
	cells := []Cell{At(0, 2), At(2, 1), At(1, 0), At(2, 0), At3(2, 0, -1), At(0, 0)}
	slices.SortFunc(cells, Compare)

	want := []Cell{At3(2, 0, -1), At(2, 0), At(2, 1), At(1, 0), At(0, 0), At(0, 2)}
	if diff := cmp.Diff(want, cells); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestCompareIsTotal(t *testing.T) {
	a, b := At3(1, 1, 0), At3(1, 1, 0)
	assert.Equal(t, 0, Compare(a, b))
	assert.False(t, Less(a, b))
	assert.True(t, Less(At(3, 0), At(2, 5)))
	assert.True(t, Less(At(2, 0), At(2, 5)))
}

func TestBelow(t *testing.T) {
	c := At3(4, 3, 2)
	assert.Equal(t, At3(5, 3, 2), c.Below(0, 0))
	assert.Equal(t, At3(5, 2, 2), c.Below(-1, 0))
	assert.Equal(t, At3(5, 4, 2), c.Below(1, 0))
	assert.Equal(t, At3(5, 3, 1), c.Below(0, -1))
	assert.Equal(t, At(4, 3), c.Flat())
}
