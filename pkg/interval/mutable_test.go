package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMutableAdd(t *testing.T) {
	cases := map[string]struct {
		adds     []Interval[int]
		expected []string
	}{
		"Disjoint": {
			adds:     []Interval[int]{co(20, 30), co(0, 10)},
			expected: []string{"[0;10)", "[20;30)"},
		},
		"MergeOnAdd": {
			adds:     []Interval[int]{co(0, 10), co(20, 30), cc(10, 20)},
			expected: []string{"[0;30)"},
		},
		"EmptyIgnored": {
			adds:     []Interval[int]{Empty[int](), co(0, 10)},
			expected: []string{"[0;10)"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewMutableSet[int]()
			for _, iv := range tc.adds {
				r.Add(iv)
			}
			if diff := cmp.Diff(tc.expected, ivStrings(&r.Set)); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestMutableRemove(t *testing.T) {
	r := NewMutableSet(co(0, 10), co(20, 30))

	// only exact members can be removed
	err := r.Remove(co(0, 5))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	err = r.Remove(co(0, 10))
	assert.NoError(t, err)
	if diff := cmp.Diff([]string{"[20;30)"}, ivStrings(&r.Set)); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	// a merged member is no longer removable by its original parts
	r.Add(co(30, 40))
	err = r.Remove(co(30, 40))
	assert.Error(t, err)
	err = r.Remove(co(20, 40))
	assert.NoError(t, err)
	assert.True(t, r.IsEmpty())

	err = r.Remove(Empty[int]())
	assert.Error(t, err)
}

func TestMutableDiscard(t *testing.T) {
	r := NewMutableSet(co(0, 10))
	r.Discard(co(0, 5)) // not an exact member, no-op
	assert.Equal(t, 1, r.Len())
	r.Discard(co(0, 10))
	assert.True(t, r.IsEmpty())
	r.Discard(co(0, 10)) // already gone, still fine
}

func TestMutablePop(t *testing.T) {
	r := NewMutableSet(co(0, 10), co(20, 30))

	iv, err := r.Pop()
	assert.NoError(t, err)
	assert.True(t, iv.Equal(co(20, 30)))

	iv, err = r.Pop()
	assert.NoError(t, err)
	assert.True(t, iv.Equal(co(0, 10)))

	_, err = r.Pop()
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestMutableSetOps(t *testing.T) {
	r := NewMutableSet(co(0, 10))

	r.UnionWith(NewSet(co(20, 30)))
	if diff := cmp.Diff([]string{"[0;10)", "[20;30)"}, ivStrings(&r.Set)); diff != "" {
		t.Errorf("union: -want, +got:\n%s", diff)
	}

	r.SubWith(NewSet(co(5, 25)))
	if diff := cmp.Diff([]string{"[0;5)", "[25;30)"}, ivStrings(&r.Set)); diff != "" {
		t.Errorf("sub: -want, +got:\n%s", diff)
	}

	r.IntersectWith(NewSet(co(0, 27)))
	if diff := cmp.Diff([]string{"[0;5)", "[25;27)"}, ivStrings(&r.Set)); diff != "" {
		t.Errorf("intersect: -want, +got:\n%s", diff)
	}

	r.XorWith(NewSet(co(0, 5)))
	if diff := cmp.Diff([]string{"[25;27)"}, ivStrings(&r.Set)); diff != "" {
		t.Errorf("xor: -want, +got:\n%s", diff)
	}

	r.Clear()
	assert.True(t, r.IsEmpty())
}

func TestFreezeIsolation(t *testing.T) {
	r := NewMutableSet(co(0, 10), co(20, 30))
	frozen := r.Freeze()
	hash := frozen.Hash()

	r.Add(co(40, 50))
	err := r.Remove(co(0, 10))
	assert.NoError(t, err)

	assert.Equal(t, 2, frozen.Len())
	assert.Equal(t, hash, frozen.Hash())

	// copies are independent too
	c := r.Copy()
	c.Clear()
	assert.Equal(t, 2, r.Len())
}
