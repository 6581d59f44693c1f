package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func co(lo, hi int) Interval[int] {
	iv, _ := ClosedOpen(lo, hi)
	return iv
}

func cc(lo, hi int) Interval[int] {
	iv, _ := Closed(lo, hi)
	return iv
}

func oo(lo, hi int) Interval[int] {
	iv, _ := Open(lo, hi)
	return iv
}

func TestNew(t *testing.T) {
	cases := map[string]struct {
		lo, hi             int
		loClosed, hiClosed bool
		expectedErr        bool
		expectedEmpty      bool
		expectedString     string
	}{
		"ClosedOpen": {
			lo: 10, hi: 20, loClosed: true,
			expectedString: "[10;20)",
		},
		"Closed": {
			lo: 10, hi: 20, loClosed: true, hiClosed: true,
			expectedString: "[10;20]",
		},
		"Open": {
			lo: 10, hi: 20,
			expectedString: "(10;20)",
		},
		"OpenClosed": {
			lo: 10, hi: 20, hiClosed: true,
			expectedString: "(10;20]",
		},
		"Degenerate": {
			lo: 10, hi: 10, loClosed: true, hiClosed: true,
			expectedString: "[10;10]",
		},
		"EqualBoundsHalfOpen": {
			lo: 10, hi: 10, loClosed: true,
			expectedEmpty: true,
		},
		"EqualBoundsOpen": {
			lo: 10, hi: 10,
			expectedEmpty: true,
		},
		"Inverted": {
			lo: 20, hi: 10, loClosed: true,
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			iv, err := New(tc.lo, tc.hi, tc.loClosed, tc.hiClosed)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidBounds)
				return
			}
			assert.NoError(t, err)
			if iv.IsEmpty() != tc.expectedEmpty {
				t.Errorf("%s: -want empty %v, +got: %v\n", name, tc.expectedEmpty, iv.IsEmpty())
			}
			if !tc.expectedEmpty && iv.String() != tc.expectedString {
				t.Errorf("%s: -want %s, +got: %s\n", name, tc.expectedString, iv.String())
			}
		})
	}
}

func TestUnbounded(t *testing.T) {
	cases := map[string]struct {
		iv             Interval[int]
		expectedString string
		expectedFull   bool
	}{
		"Full":        {iv: Full[int](), expectedString: "(-inf;+inf)", expectedFull: true},
		"AtLeast":     {iv: AtLeast(5), expectedString: "[5;+inf)"},
		"GreaterThan": {iv: GreaterThan(5), expectedString: "(5;+inf)"},
		"AtMost":      {iv: AtMost(5), expectedString: "(-inf;5]"},
		"LessThan":    {iv: LessThan(5), expectedString: "(-inf;5)"},
		"Point":       {iv: Point(5), expectedString: "[5;5]"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.iv.String() != tc.expectedString {
				t.Errorf("%s: -want %s, +got: %s\n", name, tc.expectedString, tc.iv.String())
			}
			if tc.iv.IsFull() != tc.expectedFull {
				t.Errorf("%s: -want full %v, +got: %v\n", name, tc.expectedFull, tc.iv.IsFull())
			}
			assert.False(t, tc.iv.IsEmpty())
		})
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var iv Interval[int]
	assert.True(t, iv.IsEmpty())
	assert.True(t, iv.Equal(Empty[int]()))
}

func TestEqualCompare(t *testing.T) {
	cases := map[string]struct {
		a, b            Interval[int]
		expectedEqual   bool
		expectedCompare int
	}{
		"Equal":          {a: co(10, 20), b: co(10, 20), expectedEqual: true, expectedCompare: 0},
		"ClosureMatters": {a: co(10, 20), b: cc(10, 20), expectedCompare: -1},
		"LowerFirst":     {a: co(5, 30), b: co(10, 20), expectedCompare: -1},
		"UpperTieBreak":  {a: co(10, 15), b: co(10, 20), expectedCompare: -1},
		"EmptyFirst":     {a: Empty[int](), b: co(10, 20), expectedCompare: -1},
		"EmptyEqual":     {a: Empty[int](), b: Empty[int](), expectedEqual: true, expectedCompare: 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.a.Equal(tc.b) != tc.expectedEqual {
				t.Errorf("%s: -want equal %v\n", name, tc.expectedEqual)
			}
			if c := tc.a.Compare(tc.b); c != tc.expectedCompare {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedCompare, c)
			}
			if c := tc.b.Compare(tc.a); c != -tc.expectedCompare {
				t.Errorf("%s reversed: -want %d, +got: %d\n", name, -tc.expectedCompare, c)
			}
		})
	}
}

func TestBeforeAfter(t *testing.T) {
	cases := map[string]struct {
		a, b           Interval[int]
		expectedBefore bool
		expectedAfter  bool
	}{
		"Apart":          {a: co(0, 5), b: co(10, 20), expectedBefore: true},
		"TouchHalfOpen":  {a: co(0, 10), b: co(10, 20), expectedBefore: true},
		"TouchClosed":    {a: cc(0, 10), b: cc(10, 20)},
		"Overlap":        {a: co(0, 15), b: co(10, 20)},
		"AfterApart":     {a: co(30, 40), b: co(10, 20), expectedAfter: true},
		"EmptyOperand":   {a: Empty[int](), b: co(10, 20)},
		"EmptyOperand2":  {a: co(10, 20), b: Empty[int]()},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.a.Before(tc.b) != tc.expectedBefore {
				t.Errorf("%s: -want before %v\n", name, tc.expectedBefore)
			}
			if tc.a.After(tc.b) != tc.expectedAfter {
				t.Errorf("%s: -want after %v\n", name, tc.expectedAfter)
			}
		})
	}
}

func TestHullClip(t *testing.T) {
	cases := map[string]struct {
		a, b         Interval[int]
		expectedHull Interval[int]
		expectedClip Interval[int]
	}{
		"Overlap": {
			a: co(0, 15), b: co(10, 20),
			expectedHull: co(0, 20), expectedClip: co(10, 15),
		},
		"Disjoint": {
			a: co(0, 5), b: co(10, 20),
			expectedHull: co(0, 20), expectedClip: Empty[int](),
		},
		"Nested": {
			a: cc(0, 30), b: oo(10, 20),
			expectedHull: cc(0, 30), expectedClip: oo(10, 20),
		},
		"TouchClosed": {
			a: cc(0, 10), b: cc(10, 20),
			expectedHull: cc(0, 20), expectedClip: Point(10),
		},
		"EmptyOperand": {
			a: co(0, 10), b: Empty[int](),
			expectedHull: co(0, 10), expectedClip: Empty[int](),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if hull := tc.a.Hull(tc.b); !hull.Equal(tc.expectedHull) {
				t.Errorf("%s hull: -want %s, +got: %s\n", name, tc.expectedHull, hull)
			}
			if clip := tc.a.Clip(tc.b); !clip.Equal(tc.expectedClip) {
				t.Errorf("%s clip: -want %s, +got: %s\n", name, tc.expectedClip, clip)
			}
			// both are symmetric
			if hull := tc.b.Hull(tc.a); !hull.Equal(tc.expectedHull) {
				t.Errorf("%s reversed hull: -want %s, +got: %s\n", name, tc.expectedHull, hull)
			}
			if clip := tc.b.Clip(tc.a); !clip.Equal(tc.expectedClip) {
				t.Errorf("%s reversed clip: -want %s, +got: %s\n", name, tc.expectedClip, clip)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		a, b           Interval[int]
		expectedBefore Interval[int]
		expectedAfter  Interval[int]
	}{
		"Straddle": {
			a: cc(0, 30), b: co(10, 20),
			expectedBefore: co(0, 10), expectedAfter: cc(20, 30),
		},
		"LeftOnly": {
			a: co(0, 15), b: co(10, 20),
			expectedBefore: co(0, 10), expectedAfter: Empty[int](),
		},
		"Covered": {
			a: oo(10, 20), b: cc(0, 30),
			expectedBefore: Empty[int](), expectedAfter: Empty[int](),
		},
		"Disjoint": {
			a: co(0, 5), b: co(10, 20),
			expectedBefore: co(0, 5), expectedAfter: Empty[int](),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.SplitBefore(tc.b); !got.Equal(tc.expectedBefore) {
				t.Errorf("%s before: -want %s, +got: %s\n", name, tc.expectedBefore, got)
			}
			if got := tc.a.SplitAfter(tc.b); !got.Equal(tc.expectedAfter) {
				t.Errorf("%s after: -want %s, +got: %s\n", name, tc.expectedAfter, got)
			}
		})
	}
}

func TestFromMarks(t *testing.T) {
	iv := cc(10, 20)
	got, err := FromMarks(iv.Lower(), iv.Upper())
	assert.NoError(t, err)
	assert.True(t, got.Equal(iv))

	// inverted marks produce the empty interval, not an error
	got, err = FromMarks(cc(20, 30).Lower(), cc(0, 10).Upper())
	assert.NoError(t, err)
	assert.True(t, got.IsEmpty())

	// marks of the wrong side are rejected
	_, err = FromMarks(iv.Upper(), iv.Lower())
	assert.NoError(t, err) // both marks are closed, sides are interchangeable

	_, err = FromMarks(co(10, 20).Upper(), co(10, 20).Lower())
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestBounds(t *testing.T) {
	iv := co(10, 20)
	lo, ok := iv.LowerValue()
	assert.True(t, ok)
	assert.Equal(t, 10, lo)
	hi, ok := iv.UpperValue()
	assert.True(t, ok)
	assert.Equal(t, 20, hi)
	assert.True(t, iv.LowerClosed())
	assert.False(t, iv.UpperClosed())

	_, ok = AtLeast(10).UpperValue()
	assert.False(t, ok)
	_, ok = Empty[int]().LowerValue()
	assert.False(t, ok)
}

func TestHash(t *testing.T) {
	assert.Equal(t, co(10, 20).Hash(), co(10, 20).Hash())
	assert.NotEqual(t, co(10, 20).Hash(), cc(10, 20).Hash())
	assert.NotEqual(t, co(10, 20).Hash(), Empty[int]().Hash())
}
